package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/leadhub/app/resources"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/pkg/middleware"
	"github.com/shashiranjanraj/leadhub/pkg/resource"
	"github.com/shashiranjanraj/leadhub/pkg/response"
	"github.com/shashiranjanraj/leadhub/pkg/session"
)

type OrderController struct {
	orders   *services.OrderService
	checkout *services.CheckoutService
	cart     *services.CartService
	export   *services.ExportService
}

func NewOrderController(
	orders *services.OrderService,
	checkout *services.CheckoutService,
	cart *services.CartService,
	export *services.ExportService,
) *OrderController {
	return &OrderController{orders: orders, checkout: checkout, cart: cart, export: export}
}

// Checkout converts the session cart into pending orders and clears it.
func (c *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	sess := session.FromCtx(r)
	cart, err := c.cart.Items(r.Context(), sess)
	if err != nil {
		fail(w, err)
		return
	}

	ids := make([]string, len(cart.Leads))
	for i, lead := range cart.Leads {
		ids[i] = lead.ID.Hex()
	}

	orders, err := c.checkout.Checkout(r.Context(), claims.UserID, claims.Email, ids)
	if errors.Is(err, services.ErrEmptyCart) {
		response.Error(w, http.StatusBadRequest, "Cart is empty")
		return
	}
	if err != nil {
		fail(w, err)
		return
	}

	c.cart.Clear(sess)
	saveSession(w, r, sess)

	resource.CollectionOf(&resources.OrderResource{}, orders).Respond(w)
}

// Mine lists the buyer's own orders, masked while pending.
func (c *OrderController) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	orders, err := c.orders.ByUser(r.Context(), userID)
	if err != nil {
		fail(w, err)
		return
	}
	resource.CollectionOf(&resources.OrderResource{}, orders).Respond(w)
}

// Show returns one of the buyer's orders.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	order, err := c.orders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err)
		return
	}
	if order.UserID.Hex() != userID {
		response.NotFound(w)
		return
	}
	resource.New(&resources.OrderResource{}, order).Respond(w)
}

// Export downloads the buyer's confirmed purchases as a spreadsheet.
func (c *OrderController) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	data, err := c.export.Export(r.Context(), userID)
	if err != nil {
		fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", services.ExportFilename(time.Now())))
	w.Write(data) //nolint:errcheck
}
