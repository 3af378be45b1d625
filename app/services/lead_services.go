package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/internal/store"
	"github.com/shashiranjanraj/leadhub/pkg/cache"
	"github.com/shashiranjanraj/leadhub/pkg/event"
)

const catalogCacheTTL = time.Minute

// catalogPageLimits are the only page sizes the storefront cache serves.
// Both the cache writes and InvalidateCatalogCache iterate this set, so a
// first page can never go stale behind a limit the invalidator misses;
// other limits skip the cache entirely.
var catalogPageLimits = []int{10, 20, 50, 100}

func catalogCacheable(limit int) bool {
	for _, l := range catalogPageLimits {
		if l == limit {
			return true
		}
	}
	return false
}

func catalogCacheKey(limit int) string {
	return fmt.Sprintf("leadhub:catalog:first:%d", limit)
}

type LeadService struct {
	leads *repositories.LeadRepository
}

func NewLeadService(leads *repositories.LeadRepository) *LeadService {
	return &LeadService{leads: leads}
}

// CatalogPage is one page of the public lead catalog.
type CatalogPage struct {
	Leads      []models.Lead    `json:"leads"`
	Pagination store.Pagination `json:"pagination"`
}

// Catalog lists available leads. The unfiltered first page is the hot path
// (it is the storefront) so it rides through Redis.
func (s *LeadService) Catalog(ctx context.Context, industry, search string, page, limit int) (CatalogPage, error) {
	if industry == "" && search == "" && page <= 1 && catalogCacheable(limit) {
		var out CatalogPage
		err := cache.Remember(catalogCacheKey(limit), catalogCacheTTL, &out, func() (interface{}, error) {
			leads, p, err := s.leads.Available(ctx, "", "", 1, limit)
			if err != nil {
				return nil, err
			}
			return CatalogPage{Leads: leads, Pagination: p}, nil
		})
		return out, err
	}

	leads, p, err := s.leads.Available(ctx, industry, search, page, limit)
	if err != nil {
		return CatalogPage{}, err
	}
	return CatalogPage{Leads: leads, Pagination: p}, nil
}

// Get returns one lead by id.
func (s *LeadService) Get(ctx context.Context, id string) (models.Lead, error) {
	return s.leads.FindByID(ctx, id)
}

// All lists every lead for the admin table.
func (s *LeadService) All(ctx context.Context, page, limit int) ([]models.Lead, store.Pagination, error) {
	return s.leads.All(ctx, page, limit)
}

// Create adds one lead by hand. Manual adds default to price 0, not the
// import default, and are forced available like every other write.
func (s *LeadService) Create(ctx context.Context, lead models.Lead) (models.Lead, error) {
	if lead.Industry == "" {
		lead.Industry = models.DefaultIndustry
	}
	if lead.Price < 0 {
		lead.Price = 0
	}
	lead.Status = models.LeadAvailable
	lead.CreatedAt = time.Now()

	if err := s.leads.Create(ctx, &lead); err != nil {
		return models.Lead{}, err
	}
	s.invalidateCatalog()
	return lead, nil
}

// Update replaces a lead's fields. Status may only move between the two
// known values; anything else falls back to available.
func (s *LeadService) Update(ctx context.Context, lead models.Lead) error {
	if lead.Status != models.LeadAvailable && lead.Status != models.LeadUnavailable {
		lead.Status = models.LeadAvailable
	}
	if err := s.leads.Update(ctx, lead); err != nil {
		return err
	}
	s.invalidateCatalog()
	return nil
}

// Delete removes a lead from the catalog. Snapshots on existing orders are
// untouched.
func (s *LeadService) Delete(ctx context.Context, id string) error {
	if err := s.leads.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCatalog()
	event.FireAsync("lead.deleted", id)
	return nil
}

// InvalidateCatalogCache drops the cached storefront pages. Fired after any
// write that changes what the catalog shows, including bulk imports.
func InvalidateCatalogCache() {
	for _, limit := range catalogPageLimits {
		_ = cache.Forget(catalogCacheKey(limit))
	}
}

func (s *LeadService) invalidateCatalog() { InvalidateCatalogCache() }
