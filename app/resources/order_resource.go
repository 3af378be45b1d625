// Package resources holds the API transformers that shape outbound JSON.
// Order responses are where the lead-data masking contract lives: buyers
// never see real contact fields until an admin confirms the order.
package resources

import (
	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/pkg/resource"
)

// Fixed placeholder strings substituted while an order is pending. They are
// constants, not derived from the real values, so a pending response leaks
// nothing (not even field lengths).
const (
	maskedEmail      = "••••••@••••.com"
	maskedWebsiteURL = "https://•••••.com"
	maskedHandle     = "@••••••"
	maskedLinkedIn   = "linkedin.com/••••"
)

// OrderResource renders an order for its buyer. Identity and categorical
// fields are always visible; contact and social fields are masked until
// confirmed; founded and facebookPixel are omitted outright while pending.
type OrderResource struct{ resource.Base }

func (r *OrderResource) ToArray(v interface{}) resource.Map {
	o, ok := v.(models.Order)
	if !ok {
		if p, isPtr := v.(*models.Order); isPtr {
			o = *p
		}
	}

	out := resource.Map{
		"id":          o.ID.Hex(),
		"leadId":      o.LeadID.Hex(),
		"price":       o.Price,
		"status":      orderStatus(&o),
		"purchasedAt": o.PurchasedAt,
		"leadData":    leadData(&o),
	}
	return out
}

func orderStatus(o *models.Order) string {
	if o.IsPending() {
		return models.OrderPending
	}
	return models.OrderConfirmed
}

func leadData(o *models.Order) resource.Map {
	d := o.LeadData

	out := resource.Map{
		"firstName":   d.FirstName,
		"lastName":    d.LastName,
		"jobTitle":    d.JobTitle,
		"websiteName": d.WebsiteName,
		"industry":    d.Industry,
		"location":    d.Location,
	}

	if o.IsPending() {
		out["email"] = maskedEmail
		out["websiteUrl"] = maskedWebsiteURL
		out["instagram"] = maskedHandle
		out["tiktok"] = maskedHandle
		out["linkedin"] = maskedLinkedIn
		return out
	}

	out["email"] = d.Email
	out["websiteUrl"] = d.WebsiteURL
	out["instagram"] = d.Instagram
	out["tiktok"] = d.TikTok
	out["linkedin"] = d.LinkedIn
	out["founded"] = d.Founded
	out["facebookPixel"] = d.FacebookPixel
	return out
}

// AdminOrderResource renders an order for the approval queue. Admins see
// the buyer and the unmasked snapshot regardless of status.
type AdminOrderResource struct{ resource.Base }

func (r *AdminOrderResource) ToArray(v interface{}) resource.Map {
	o, ok := v.(models.Order)
	if !ok {
		if p, isPtr := v.(*models.Order); isPtr {
			o = *p
		}
	}
	return resource.Map{
		"id":          o.ID.Hex(),
		"userId":      o.UserID.Hex(),
		"userEmail":   o.UserEmail,
		"leadId":      o.LeadID.Hex(),
		"leadData":    o.LeadData,
		"price":       o.Price,
		"status":      orderStatus(&o),
		"purchasedAt": o.PurchasedAt,
	}
}
