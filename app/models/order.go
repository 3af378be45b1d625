package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order lifecycle states. The only transition is pending → confirmed,
// performed by an admin. There is no cancellation and no way back.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
)

// LeadSnapshot is the lead's contact data copied onto an order at purchase
// time. Later edits or deletion of the lead never touch it.
type LeadSnapshot struct {
	FirstName     string `bson:"firstName" json:"firstName"`
	LastName      string `bson:"lastName" json:"lastName"`
	Email         string `bson:"email" json:"email"`
	JobTitle      string `bson:"jobTitle" json:"jobTitle"`
	WebsiteName   string `bson:"websiteName" json:"websiteName"`
	WebsiteURL    string `bson:"websiteUrl" json:"websiteUrl"`
	Instagram     string `bson:"instagram" json:"instagram"`
	LinkedIn      string `bson:"linkedin" json:"linkedin"`
	TikTok        string `bson:"tiktok" json:"tiktok"`
	Industry      string `bson:"industry" json:"industry"`
	Location      string `bson:"location" json:"location"`
	Founded       string `bson:"founded" json:"founded"`
	FacebookPixel string `bson:"facebookPixel" json:"facebookPixel"`
}

// Snapshot copies the purchasable fields of a lead.
func Snapshot(l Lead) LeadSnapshot {
	return LeadSnapshot{
		FirstName:     l.FirstName,
		LastName:      l.LastName,
		Email:         l.Email,
		JobTitle:      l.JobTitle,
		WebsiteName:   l.WebsiteName,
		WebsiteURL:    l.WebsiteURL,
		Instagram:     l.Instagram,
		LinkedIn:      l.LinkedIn,
		TikTok:        l.TikTok,
		Industry:      l.Industry,
		Location:      l.Location,
		Founded:       l.Founded,
		FacebookPixel: l.FacebookPixel,
	}
}

// Order records one lead purchase by one buyer.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	LeadID      primitive.ObjectID `bson:"leadId" json:"leadId"`
	LeadData    LeadSnapshot       `bson:"leadData" json:"leadData"`
	Price       float64            `bson:"price" json:"price"`
	Status      string             `bson:"status" json:"status"`
	PurchasedAt time.Time          `bson:"purchasedAt" json:"purchasedAt"`
}

// IsPending treats any status other than confirmed as pending, so legacy
// orders written without a status field stay locked until approved.
func (o *Order) IsPending() bool {
	return o.Status != OrderConfirmed
}
