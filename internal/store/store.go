// Package store owns the MongoDB connection for LeadHub.
//
// All collections hang off a single client with a shared pool. Call Connect
// once at boot, Close on shutdown. Repositories obtain handles via
// store.Collection(name).
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/leadhub/config"
)

// Collection names used across repositories.
const (
	ColLeads    = "leads"
	ColOrders   = "orders"
	ColUsers    = "users"
	ColWishlist = "wishlist"
	ColStats    = "stats"
	ColFailed   = "failed_jobs"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect initialises the Mongo client, verifies connectivity and ensures
// the indexes the query paths rely on.
func Connect(ctx context.Context) error {
	opts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(50)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("store: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("store: ping: %w", err)
	}

	client = c
	db = c.Database(config.MongoDB())

	if err := ensureIndexes(ctx); err != nil {
		return err
	}
	return nil
}

// Close disconnects the client. Safe to call when Connect never ran.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("store: disconnect: %w", err)
	}
	return nil
}

// Collection returns a handle for the named collection.
// Panics if Connect has not been called — a programming error, not a
// runtime condition.
func Collection(name string) *mongo.Collection {
	if db == nil {
		panic("store: Collection called before Connect")
	}
	return db.Collection(name)
}

// DB returns the database handle for callers that need raw access.
func DB() *mongo.Database { return db }

func ensureIndexes(ctx context.Context) error {
	idxCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	models := map[string][]mongo.IndexModel{
		ColLeads: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "industry", Value: 1}}},
		},
		ColOrders: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "purchasedAt", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		ColUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColWishlist: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "leadId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for col, idx := range models {
		if _, err := db.Collection(col).Indexes().CreateMany(idxCtx, idx); err != nil {
			return fmt.Errorf("store: indexes %s: %w", col, err)
		}
	}
	return nil
}

// ─── Pagination ───────────────────────────────────────────────────────────────

// Pagination describes one page of a collection query result.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination normalises page/limit and computes the page count.
func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
