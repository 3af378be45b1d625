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

// UserRepository handles the users collection.
type UserRepository struct {
	name string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{name: store.ColUsers}
}

// col resolves the collection lazily so repositories can be built
// before the database connection exists.
func (r *UserRepository) col() *mongo.Collection {
	return store.Collection(r.name)
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	var user models.User
	if err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("repositories: find user by email: %w", err)
	}
	return user, nil
}

// FindByID looks up a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	var user models.User
	if err := r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("repositories: find user %s: %w", id, err)
	}
	return user, nil
}

// Create persists a new user record.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	res, err := r.col().InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("repositories: create user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// UpdateRole corrects a user's stored role after the allow-list check.
func (r *UserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	_, err := r.col().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return fmt.Errorf("repositories: update role: %w", err)
	}
	return nil
}

// UpdateProfile saves the editable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, user models.User) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	res, err := r.col().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"displayName":           user.DisplayName,
		"companyName":           user.CompanyName,
		"jobTitle":              user.JobTitle,
		"website":               user.Website,
		"professionalInterests": user.ProfessionalInterests,
		"alertPreferences":      user.AlertPreferences,
	}})
	if err != nil {
		return fmt.Errorf("repositories: update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// All returns users for the admin table, newest first.
func (r *UserRepository) All(ctx context.Context, page, limit int) ([]models.User, store.Pagination, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = store.BatchSize
	}

	total, err := r.col().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, store.Pagination{}, fmt.Errorf("repositories: count users: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.col().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, store.Pagination{}, fmt.Errorf("repositories: list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, store.Pagination{}, fmt.Errorf("repositories: decode users: %w", err)
	}
	return users, store.NewPagination(page, limit, total), nil
}
