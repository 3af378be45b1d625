package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/shashiranjanraj/leadhub/app/models"
)

// DefaultPrice is assigned to imported rows with a missing or unparseable
// price.
const DefaultPrice = 5

// BuildLead assembles a Lead document from a parsed row. Returns false for
// junk rows: ones lacking all three of email, firstName and websiteName.
// Defaults: industry "Other", price DefaultPrice, status "available".
func BuildLead(row Row, now time.Time) (models.Lead, bool) {
	lead := models.Lead{
		FirstName:     row[FieldFirstName],
		LastName:      row[FieldLastName],
		Email:         row[FieldEmail],
		JobTitle:      row[FieldJobTitle],
		WebsiteName:   row[FieldWebsiteName],
		WebsiteURL:    row[FieldWebsiteURL],
		Instagram:     row[FieldInstagram],
		LinkedIn:      row[FieldLinkedIn],
		TikTok:        row[FieldTikTok],
		Industry:      row[FieldIndustry],
		Location:      row[FieldLocation],
		Founded:       row[FieldFounded],
		FacebookPixel: row[FieldFacebookPixel],
		Price:         ParsePrice(row[FieldPrice], DefaultPrice),
		Status:        models.LeadAvailable,
		CreatedAt:     now,
	}

	if lead.Email == "" && lead.FirstName == "" && lead.WebsiteName == "" {
		return models.Lead{}, false
	}

	if lead.Industry == "" {
		lead.Industry = models.DefaultIndustry
	}
	return lead, true
}

// ParsePrice strips currency noise ($ and ,) and parses the rest as a
// float. Unparseable or negative values yield fallback — price never goes
// below zero.
func ParsePrice(s string, fallback float64) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return fallback
	}
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price < 0 {
		return fallback
	}
	return price
}
