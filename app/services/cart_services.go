package services

import (
	"context"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/pkg/session"
)

const cartKey = "cart"

// CartService keeps the shopping cart in the redis-backed session, so it
// survives page reloads but not logouts.
type CartService struct {
	leads *repositories.LeadRepository
}

func NewCartService(leads *repositories.LeadRepository) *CartService {
	return &CartService{leads: leads}
}

// Cart is the resolved cart contents with a running total.
type Cart struct {
	Leads []models.Lead `json:"leads"`
	Total float64       `json:"total"`
}

func cartIDs(sess *session.Session) []string {
	raw, ok := sess.Get(cartKey)
	if !ok {
		return nil
	}
	// Session values round-trip through JSON, so the slice comes back as
	// []interface{} on loads from Redis.
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				ids = append(ids, s)
			}
		}
		return ids
	}
	return nil
}

// Add puts a lead id in the cart. Adding a lead twice is a no-op; a lead
// can be bought once per checkout.
func (s *CartService) Add(ctx context.Context, sess *session.Session, leadID string) error {
	if _, err := s.leads.FindByID(ctx, leadID); err != nil {
		return err
	}

	ids := cartIDs(sess)
	for _, id := range ids {
		if id == leadID {
			return nil
		}
	}
	sess.Set(cartKey, append(ids, leadID))
	return nil
}

// Remove takes a lead id out of the cart. Removing an absent id is a no-op.
func (s *CartService) Remove(sess *session.Session, leadID string) {
	ids := cartIDs(sess)
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != leadID {
			out = append(out, id)
		}
	}
	sess.Set(cartKey, out)
}

// Items resolves the cart ids against the catalog. Leads deleted since they
// were added are silently dropped.
func (s *CartService) Items(ctx context.Context, sess *session.Session) (Cart, error) {
	var cart Cart
	for _, id := range cartIDs(sess) {
		lead, err := s.leads.FindByID(ctx, id)
		if err == repositories.ErrNotFound {
			continue
		}
		if err != nil {
			return Cart{}, err
		}
		cart.Leads = append(cart.Leads, lead)
		cart.Total += lead.Price
	}
	return cart, nil
}

// Clear empties the cart.
func (s *CartService) Clear(sess *session.Session) {
	sess.Delete(cartKey)
}
