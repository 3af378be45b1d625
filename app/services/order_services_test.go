package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/internal/store"
)

// fakeOrderStore keeps orders in memory and mimics the repository's
// update-one-field Confirm semantics.
type fakeOrderStore struct {
	orders   map[string]models.Order
	confirms int
}

func (f *fakeOrderStore) FindByID(_ context.Context, id string) (models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return models.Order{}, repositories.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderStore) ByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) All(_ context.Context, page, limit int) ([]models.Order, store.Pagination, error) {
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, store.NewPagination(page, limit, int64(len(out))), nil
}

func (f *fakeOrderStore) Confirm(_ context.Context, id string) error {
	o, ok := f.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	f.confirms++
	o.Status = models.OrderConfirmed
	f.orders[id] = o
	return nil
}

func pendingOrder() models.Order {
	return models.Order{
		ID:        primitive.NewObjectID(),
		UserID:    primitive.NewObjectID(),
		UserEmail: "buyer@example.com",
		LeadID:    primitive.NewObjectID(),
		LeadData: models.LeadSnapshot{
			FirstName: "Jane", LastName: "Doe", Email: "jane@acme.com",
			WebsiteName: "Acme", Industry: "Technology", Founded: "2019",
		},
		Price:       9.99,
		Status:      models.OrderPending,
		PurchasedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestApprovePreservesEverythingButStatus(t *testing.T) {
	before := pendingOrder()
	fake := &fakeOrderStore{orders: map[string]models.Order{before.ID.Hex(): before}}
	svc := NewOrderService(fake)

	got, err := svc.Approve(context.Background(), before.ID.Hex(), "admin@leadhub.com")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got.Status != models.OrderConfirmed {
		t.Fatalf("status = %q, want %q", got.Status, models.OrderConfirmed)
	}

	want := before
	want.Status = models.OrderConfirmed
	if !reflect.DeepEqual(got, want) {
		t.Errorf("approve changed more than status:\n got %+v\nwant %+v", got, want)
	}
}

func TestApproveConfirmedOrderIsNoOp(t *testing.T) {
	order := pendingOrder()
	order.Status = models.OrderConfirmed
	fake := &fakeOrderStore{orders: map[string]models.Order{order.ID.Hex(): order}}
	svc := NewOrderService(fake)

	got, err := svc.Approve(context.Background(), order.ID.Hex(), "admin@leadhub.com")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got.Status != models.OrderConfirmed {
		t.Errorf("status = %q, want confirmed", got.Status)
	}
	if fake.confirms != 0 {
		t.Errorf("confirm writes = %d, want 0 for an already confirmed order", fake.confirms)
	}
}

func TestApproveMissingOrder(t *testing.T) {
	fake := &fakeOrderStore{orders: map[string]models.Order{}}
	svc := NewOrderService(fake)

	if _, err := svc.Approve(context.Background(), primitive.NewObjectID().Hex(), "admin@leadhub.com"); err != repositories.ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLegacyOrderWithoutStatusCanBeApproved(t *testing.T) {
	order := pendingOrder()
	order.Status = ""
	fake := &fakeOrderStore{orders: map[string]models.Order{order.ID.Hex(): order}}
	svc := NewOrderService(fake)

	got, err := svc.Approve(context.Background(), order.ID.Hex(), "admin@leadhub.com")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got.Status != models.OrderConfirmed {
		t.Errorf("status = %q, want confirmed", got.Status)
	}
	if fake.confirms != 1 {
		t.Errorf("confirm writes = %d, want 1", fake.confirms)
	}
}
