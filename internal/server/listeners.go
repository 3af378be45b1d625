package server

import (
	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/pkg/event"
	"github.com/shashiranjanraj/leadhub/pkg/logger"
)

// registerListeners wires the domain events to their side effects. Handlers
// run off the request path; failures here never fail the triggering call.
func registerListeners() {
	event.Listen("user.registered", func(payload interface{}) {
		if u, ok := payload.(models.User); ok {
			logger.Info("event: user registered", "email", u.Email, "role", u.Role)
		}
	})

	event.Listen("order.created", func(payload interface{}) {
		if orders, ok := payload.([]models.Order); ok && len(orders) > 0 {
			logger.Info("event: orders created",
				"buyer", orders[0].UserEmail, "count", len(orders))
		}
	})

	event.Listen("order.confirmed", func(payload interface{}) {
		if o, ok := payload.(models.Order); ok {
			logger.Info("event: order confirmed",
				"order_id", o.ID.Hex(), "buyer", o.UserEmail)
		}
	})

	// A bulk import changes what the storefront shows.
	event.Listen("leads.imported", func(payload interface{}) {
		services.InvalidateCatalogCache()
		if n, ok := payload.(int); ok {
			logger.Info("event: leads imported", "count", n)
		}
	})
}
