package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/internal/store"
	"github.com/shashiranjanraj/leadhub/pkg/event"
	"github.com/shashiranjanraj/leadhub/pkg/logger"
	"github.com/shashiranjanraj/leadhub/pkg/metrics"
)

// OrderStore is the slice of the order repository this service needs.
type OrderStore interface {
	FindByID(ctx context.Context, id string) (models.Order, error)
	ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	All(ctx context.Context, page, limit int) ([]models.Order, store.Pagination, error)
	Confirm(ctx context.Context, id string) error
}

type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// ByUser lists a buyer's own orders, newest first.
func (s *OrderService) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repositories.ErrNotFound
	}
	return s.orders.ByUser(ctx, uid)
}

// Get returns one order.
func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// All lists every order for the admin table.
func (s *OrderService) All(ctx context.Context, page, limit int) ([]models.Order, store.Pagination, error) {
	return s.orders.All(ctx, page, limit)
}

// Approve moves an order to confirmed. Only the status field changes;
// the snapshot, price and timestamps are untouched, and re-approving a
// confirmed order is a harmless no-op.
func (s *OrderService) Approve(ctx context.Context, id, adminEmail string) (models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	if !order.IsPending() {
		return order, nil
	}

	if err := s.orders.Confirm(ctx, id); err != nil {
		return models.Order{}, err
	}
	order.Status = models.OrderConfirmed

	metrics.OrdersTotal.WithLabelValues(models.OrderConfirmed).Inc()
	logger.WithCtx(ctx).Info("order approved",
		"order_id", id, "buyer", order.UserEmail, "admin", adminEmail)
	event.FireAsync("order.confirmed", order)

	return order, nil
}
