package seeders

import (
	"context"
	"time"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
)

func init() {
	Register("leads", SeedLeads)
}

// SeedLeads drops a handful of demo leads into an empty catalog.
func SeedLeads(ctx context.Context) error {
	repo := repositories.NewLeadRepository()

	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := time.Now()
	demo := []models.Lead{
		{
			FirstName: "Jane", LastName: "Miller", Email: "jane@acmesoft.io",
			JobTitle: "CTO", WebsiteName: "AcmeSoft", WebsiteURL: "https://acmesoft.io",
			LinkedIn: "linkedin.com/in/janemiller", Industry: "Technology",
			Location: "Berlin", Founded: "2019", Price: 12.50,
		},
		{
			FirstName: "Omar", LastName: "Haddad", Email: "omar@medicore.com",
			JobTitle: "Founder", WebsiteName: "MediCore", WebsiteURL: "https://medicore.com",
			Instagram: "@medicore", Industry: "Healthcare",
			Location: "Dubai", Founded: "2021", FacebookPixel: "yes", Price: 8,
		},
		{
			FirstName: "Priya", LastName: "Shah", Email: "priya@finlane.co",
			JobTitle: "CEO", WebsiteName: "FinLane", WebsiteURL: "https://finlane.co",
			TikTok: "@finlane", Industry: "Finance",
			Location: "Mumbai", Price: 15,
		},
		{
			FirstName: "Lucas", LastName: "Weber", Email: "lucas@shopfox.de",
			JobTitle: "Head of Growth", WebsiteName: "ShopFox", WebsiteURL: "https://shopfox.de",
			Industry: "E-commerce", Location: "Hamburg", Price: 5,
		},
	}

	for i := range demo {
		demo[i].Status = models.LeadAvailable
		demo[i].CreatedAt = now
		if err := repo.Create(ctx, &demo[i]); err != nil {
			return err
		}
	}
	return nil
}
