package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
)

type WishlistService struct {
	wishlist *repositories.WishlistRepository
	leads    *repositories.LeadRepository
}

func NewWishlistService(wishlist *repositories.WishlistRepository, leads *repositories.LeadRepository) *WishlistService {
	return &WishlistService{wishlist: wishlist, leads: leads}
}

// Add saves a lead to the user's wishlist. Saving twice is a no-op.
func (s *WishlistService) Add(ctx context.Context, userID, leadID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return repositories.ErrNotFound
	}
	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return err
	}
	return s.wishlist.Add(ctx, uid, lead.ID)
}

// Remove drops a lead from the user's wishlist.
func (s *WishlistService) Remove(ctx context.Context, userID, leadID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return repositories.ErrNotFound
	}
	lid, err := primitive.ObjectIDFromHex(leadID)
	if err != nil {
		return repositories.ErrNotFound
	}
	return s.wishlist.Remove(ctx, uid, lid)
}

// Leads resolves the user's wishlist to full lead records. Entries whose
// lead has since been deleted are skipped.
func (s *WishlistService) Leads(ctx context.Context, userID string) ([]models.Lead, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repositories.ErrNotFound
	}

	entries, err := s.wishlist.ByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	leads := make([]models.Lead, 0, len(entries))
	for _, e := range entries {
		lead, err := s.leads.FindByID(ctx, e.LeadID.Hex())
		if err == repositories.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, nil
}
