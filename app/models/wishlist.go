package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistEntry marks a lead a user wants to come back to.
// One entry per (user, lead) pair; adding twice is a no-op.
type WishlistEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	LeadID    primitive.ObjectID `bson:"leadId" json:"leadId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
