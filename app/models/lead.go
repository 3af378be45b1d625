package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead status values. Status controls catalog visibility only; purchases
// never change it.
const (
	LeadAvailable   = "available"
	LeadUnavailable = "unavailable"
)

// DefaultIndustry is assigned when an imported row carries no industry.
const DefaultIndustry = "Other"

// Industries is the fixed set offered in catalog filters and admin forms.
var Industries = []string{
	"Technology", "Healthcare", "Finance", "Real Estate", "E-commerce",
	"Education", "Marketing", "Legal", "Manufacturing", "Retail",
	"Food & Beverage", "Other",
}

// Lead is a sellable contact record in the catalog.
type Lead struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName     string             `bson:"firstName" json:"firstName"`
	LastName      string             `bson:"lastName" json:"lastName"`
	Email         string             `bson:"email" json:"email"`
	JobTitle      string             `bson:"jobTitle" json:"jobTitle"`
	WebsiteName   string             `bson:"websiteName" json:"websiteName"`
	WebsiteURL    string             `bson:"websiteUrl" json:"websiteUrl"`
	Instagram     string             `bson:"instagram" json:"instagram"`
	LinkedIn      string             `bson:"linkedin" json:"linkedin"`
	TikTok        string             `bson:"tiktok" json:"tiktok"`
	Industry      string             `bson:"industry" json:"industry"`
	Location      string             `bson:"location" json:"location"`
	Founded       string             `bson:"founded" json:"founded"`
	FacebookPixel string             `bson:"facebookPixel" json:"facebookPixel"`
	Price         float64            `bson:"price" json:"price"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`

	// Legacy documents written before the field split carry a combined
	// "name" and a "company" instead of the canonical fields. They are
	// read, folded in by Canonicalize, and never serialised outward.
	LegacyName    string `bson:"name,omitempty" json:"-"`
	LegacyCompany string `bson:"company,omitempty" json:"-"`
}

// Canonicalize folds legacy name/company values into the canonical fields.
// Call after every read; writes always produce canonical documents.
func (l *Lead) Canonicalize() {
	if l.FirstName == "" && l.LegacyName != "" {
		first, last := SplitName(l.LegacyName)
		l.FirstName = first
		if l.LastName == "" {
			l.LastName = last
		}
	}
	if l.WebsiteName == "" && l.LegacyCompany != "" {
		l.WebsiteName = l.LegacyCompany
	}
	l.LegacyName = ""
	l.LegacyCompany = ""
}

// SplitName breaks a combined personal name into first and last parts.
// Everything after the first token is the last name.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// FullName joins the first and last name for display.
func (l *Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}
