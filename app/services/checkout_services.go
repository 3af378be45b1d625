package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/pkg/event"
	"github.com/shashiranjanraj/leadhub/pkg/logger"
	"github.com/shashiranjanraj/leadhub/pkg/metrics"
)

// ErrEmptyCart is returned when checkout is attempted with nothing to buy.
var ErrEmptyCart = errors.New("services: cart is empty")

// CheckoutService turns cart contents into pending orders. It never touches
// the lead documents: purchasing and catalog visibility are independent, so
// the same lead can be sold again unless an admin flips its status.
type CheckoutService struct {
	leads  *repositories.LeadRepository
	orders *repositories.OrderRepository
}

func NewCheckoutService(leads *repositories.LeadRepository, orders *repositories.OrderRepository) *CheckoutService {
	return &CheckoutService{leads: leads, orders: orders}
}

// Checkout creates one pending order per lead id. The snapshot is taken
// here, so later lead edits or deletions never change what the buyer sees.
func (s *CheckoutService) Checkout(ctx context.Context, userID, userEmail string, leadIDs []string) ([]models.Order, error) {
	if len(leadIDs) == 0 {
		return nil, ErrEmptyCart
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("services: bad user id %q: %w", userID, err)
	}

	now := time.Now()
	orders := make([]models.Order, 0, len(leadIDs))
	for _, id := range leadIDs {
		lead, err := s.leads.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("services: checkout lead %s: %w", id, err)
		}
		orders = append(orders, models.Order{
			ID:          primitive.NewObjectID(),
			UserID:      uid,
			UserEmail:   userEmail,
			LeadID:      lead.ID,
			LeadData:    models.Snapshot(lead),
			Price:       lead.Price,
			Status:      models.OrderPending,
			PurchasedAt: now,
		})
	}

	if err := s.orders.CreateMany(ctx, orders); err != nil {
		return nil, err
	}

	metrics.OrdersTotal.WithLabelValues(models.OrderPending).Add(float64(len(orders)))
	logger.WithCtx(ctx).Info("checkout complete",
		"user", userEmail, "orders", len(orders))
	event.FireAsync("order.created", orders)

	return orders, nil
}
