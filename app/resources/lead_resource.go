package resources

import (
	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/pkg/resource"
)

// LeadResource renders a catalog lead for browsing customers. Contact and
// social fields never appear here; they are only sold through orders.
type LeadResource struct{ resource.Base }

func (r *LeadResource) ToArray(v interface{}) resource.Map {
	l, ok := v.(models.Lead)
	if !ok {
		if p, isPtr := v.(*models.Lead); isPtr {
			l = *p
		}
	}
	return resource.Map{
		"id":          l.ID.Hex(),
		"firstName":   l.FirstName,
		"lastName":    l.LastName,
		"jobTitle":    l.JobTitle,
		"websiteName": l.WebsiteName,
		"industry":    l.Industry,
		"location":    l.Location,
		"price":       l.Price,
		"status":      l.Status,
		"createdAt":   l.CreatedAt,
	}
}

// AdminLeadResource renders the full lead record for the admin table.
type AdminLeadResource struct{ resource.Base }

func (r *AdminLeadResource) ToArray(v interface{}) resource.Map {
	l, ok := v.(models.Lead)
	if !ok {
		if p, isPtr := v.(*models.Lead); isPtr {
			l = *p
		}
	}
	return resource.Map{
		"id":            l.ID.Hex(),
		"firstName":     l.FirstName,
		"lastName":      l.LastName,
		"email":         l.Email,
		"jobTitle":      l.JobTitle,
		"websiteName":   l.WebsiteName,
		"websiteUrl":    l.WebsiteURL,
		"instagram":     l.Instagram,
		"linkedin":      l.LinkedIn,
		"tiktok":        l.TikTok,
		"industry":      l.Industry,
		"location":      l.Location,
		"founded":       l.Founded,
		"facebookPixel": l.FacebookPixel,
		"price":         l.Price,
		"status":        l.Status,
		"createdAt":     l.CreatedAt,
	}
}
