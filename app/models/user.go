package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Role is derived from the ADMIN_EMAILS allow-list on every
// login; the stored value is a cache, never the source of truth.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// AlertPreferences controls which new-lead alerts a user wants.
type AlertPreferences struct {
	Enabled    bool     `bson:"enabled" json:"enabled"`
	Industries []string `bson:"industries" json:"industries"`
	Locations  []string `bson:"locations" json:"locations"`
}

// User is a registered account, buyer or admin.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"` // bcrypt hash, never serialised
	DisplayName string             `bson:"displayName" json:"displayName"`
	Role        string             `bson:"role" json:"role"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`

	// Profile
	CompanyName           string           `bson:"companyName" json:"companyName"`
	JobTitle              string           `bson:"jobTitle" json:"jobTitle"`
	Website               string           `bson:"website" json:"website"`
	ProfessionalInterests []string         `bson:"professionalInterests" json:"professionalInterests"`
	AlertPreferences      AlertPreferences `bson:"alertPreferences" json:"alertPreferences"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
