package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/internal/store"
	"github.com/shashiranjanraj/leadhub/pkg/auth"
	"github.com/shashiranjanraj/leadhub/pkg/middleware"
	"github.com/shashiranjanraj/leadhub/pkg/router"
	"github.com/shashiranjanraj/leadhub/pkg/testkit"
)

const buyerID = "650000000000000000000001"

// stubOrderStore serves fixture orders so the HTTP surface can be exercised
// without a database behind it.
type stubOrderStore struct{ orders []models.Order }

func (s *stubOrderStore) FindByID(_ context.Context, id string) (models.Order, error) {
	for _, o := range s.orders {
		if o.ID.Hex() == id {
			return o, nil
		}
	}
	return models.Order{}, repositories.ErrNotFound
}

func (s *stubOrderStore) ByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderStore) All(_ context.Context, page, limit int) ([]models.Order, store.Pagination, error) {
	return s.orders, store.NewPagination(page, limit, int64(len(s.orders))), nil
}

func (s *stubOrderStore) Confirm(context.Context, string) error { return nil }

func oid(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("object id %q: %v", hex, err)
	}
	return id
}

// fixtureOrders: one pending and one confirmed order for the buyer, plus a
// pending order owned by someone else.
func fixtureOrders(t *testing.T) []models.Order {
	t.Helper()
	return []models.Order{
		{
			ID:     oid(t, "650000000000000000000a01"),
			UserID: oid(t, buyerID),
			LeadID: oid(t, "650000000000000000000b01"),
			LeadData: models.LeadSnapshot{
				FirstName:     "Ava",
				LastName:      "Stone",
				Email:         "ava@stonefit.com",
				JobTitle:      "Owner",
				WebsiteName:   "Stone Fitness",
				WebsiteURL:    "https://stonefit.com",
				Instagram:     "@stonefit",
				LinkedIn:      "linkedin.com/in/avastone",
				TikTok:        "@stonefitness",
				Industry:      "Health & Wellness",
				Location:      "Austin, TX",
				Founded:       "2019",
				FacebookPixel: "active",
			},
			Price:       5,
			Status:      models.OrderPending,
			PurchasedAt: time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:     oid(t, "650000000000000000000a02"),
			UserID: oid(t, buyerID),
			LeadID: oid(t, "650000000000000000000b02"),
			LeadData: models.LeadSnapshot{
				FirstName:     "Noah",
				LastName:      "Reed",
				Email:         "noah@reedroofing.com",
				JobTitle:      "Founder",
				WebsiteName:   "Reed Roofing",
				WebsiteURL:    "https://reedroofing.com",
				Instagram:     "@reedroofing",
				LinkedIn:      "linkedin.com/in/noahreed",
				TikTok:        "@reedroofs",
				Industry:      "Home Services",
				Location:      "Denver, CO",
				Founded:       "2015",
				FacebookPixel: "none",
			},
			Price:       12.5,
			Status:      models.OrderConfirmed,
			PurchasedAt: time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          oid(t, "650000000000000000000a03"),
			UserID:      oid(t, "650000000000000000000002"),
			LeadID:      oid(t, "650000000000000000000b03"),
			Price:       5,
			Status:      models.OrderPending,
			PurchasedAt: time.Date(2026, time.April, 3, 8, 0, 0, 0, time.UTC),
		},
	}
}

func ordersHandler(t *testing.T) http.Handler {
	t.Helper()

	svc := services.NewOrderService(&stubOrderStore{orders: fixtureOrders(t)})
	c := NewOrderController(svc, nil, nil, nil)

	r := router.New()
	r.Get("/api/orders", "orders.mine", c.Mine, middleware.Auth)
	r.Get("/api/orders/{id}", "orders.show", c.Show, middleware.Auth)
	return r.Handler()
}

// asBearer wraps a handler so every request carries a freshly signed token.
// Tokens embed issue/expiry timestamps, so they cannot live in the static
// scenario headers.
func asBearer(t *testing.T, h http.Handler, userID, email string) http.Handler {
	t.Helper()

	token, err := auth.GenerateToken(userID, email, models.RoleCustomer)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(w, r)
	})
}

func TestOrderEndpoints(t *testing.T) {
	h := ordersHandler(t)
	buyer := asBearer(t, h, buyerID, "buyer@example.com")

	testkit.Run(t, buyer, "testdata/orders_mine.json")
	testkit.Run(t, buyer, "testdata/orders_show_foreign.json")
	testkit.Run(t, h, "testdata/orders_unauthenticated.json")
}
