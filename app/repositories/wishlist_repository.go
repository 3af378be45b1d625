package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/internal/store"
	"github.com/shashiranjanraj/leadhub/pkg/metrics"
)

// WishlistRepository handles the wishlist collection.
type WishlistRepository struct {
	name string
}

func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{name: store.ColWishlist}
}

// col resolves the collection lazily so repositories can be built
// before the database connection exists.
func (r *WishlistRepository) col() *mongo.Collection {
	return store.Collection(r.name)
}

// Add saves a (user, lead) entry. A duplicate add is a no-op; the unique
// index plus upsert keeps exactly one entry per pair.
func (r *WishlistRepository) Add(ctx context.Context, userID, leadID primitive.ObjectID) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	_, err := r.col().UpdateOne(ctx,
		bson.M{"userId": userID, "leadId": leadID},
		bson.M{"$setOnInsert": bson.M{
			"userId":    userID,
			"leadId":    leadID,
			"createdAt": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("repositories: wishlist add: %w", err)
	}
	return nil
}

// Remove deletes a (user, lead) entry.
func (r *WishlistRepository) Remove(ctx context.Context, userID, leadID primitive.ObjectID) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	res, err := r.col().DeleteOne(ctx, bson.M{"userId": userID, "leadId": leadID})
	if err != nil {
		return fmt.Errorf("repositories: wishlist remove: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ByUser lists a user's wishlist entries, newest first.
func (r *WishlistRepository) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.WishlistEntry, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col().Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("repositories: wishlist for user: %w", err)
	}
	defer cur.Close(ctx)

	var entries []models.WishlistEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("repositories: decode wishlist: %w", err)
	}
	return entries, nil
}
