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

// LeadRepository handles the leads collection.
type LeadRepository struct {
	name string
}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{name: store.ColLeads}
}

// col resolves the collection lazily so repositories can be built
// before the database connection exists.
func (r *LeadRepository) col() *mongo.Collection {
	return store.Collection(r.name)
}

// InsertLeads writes leads in sequential batches. Satisfies the import
// pipeline's Writer interface.
func (r *LeadRepository) InsertLeads(ctx context.Context, leads []models.Lead, onProgress func(written, total int)) (int, error) {
	defer metrics.ObserveDBQuery("insert", time.Now())

	docs := make([]interface{}, len(leads))
	for i := range leads {
		docs[i] = leads[i]
	}
	return store.InsertInBatches(ctx, r.col(), docs, onProgress)
}

// Create persists one lead (admin manual add).
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	res, err := r.col().InsertOne(ctx, lead)
	if err != nil {
		return fmt.Errorf("repositories: create lead: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		lead.ID = oid
	}
	return nil
}

// FindByID returns one lead, canonicalized.
func (r *LeadRepository) FindByID(ctx context.Context, id string) (models.Lead, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Lead{}, ErrNotFound
	}

	var lead models.Lead
	if err := r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Lead{}, ErrNotFound
		}
		return models.Lead{}, fmt.Errorf("repositories: find lead %s: %w", id, err)
	}
	lead.Canonicalize()
	return lead, nil
}

// Available lists catalog-visible leads, newest first, with optional
// industry filter and free-text search.
func (r *LeadRepository) Available(ctx context.Context, industry, search string, page, limit int) ([]models.Lead, store.Pagination, error) {
	filter := bson.M{"status": models.LeadAvailable}
	if industry != "" && industry != "All" {
		filter["industry"] = industry
	}
	if search != "" {
		regex := primitive.Regex{Pattern: regexQuote(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": regex},
			bson.M{"lastName": regex},
			bson.M{"websiteName": regex},
			bson.M{"industry": regex},
			bson.M{"location": regex},
			bson.M{"jobTitle": regex},
		}
	}
	return r.page(ctx, filter, page, limit)
}

// All lists every lead for the admin table, newest first.
func (r *LeadRepository) All(ctx context.Context, page, limit int) ([]models.Lead, store.Pagination, error) {
	return r.page(ctx, bson.M{}, page, limit)
}

func (r *LeadRepository) page(ctx context.Context, filter bson.M, page, limit int) ([]models.Lead, store.Pagination, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = store.BatchSize
	}

	total, err := r.col().CountDocuments(ctx, filter)
	if err != nil {
		return nil, store.Pagination{}, fmt.Errorf("repositories: count leads: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, store.Pagination{}, fmt.Errorf("repositories: list leads: %w", err)
	}
	defer cur.Close(ctx)

	var leads []models.Lead
	if err := cur.All(ctx, &leads); err != nil {
		return nil, store.Pagination{}, fmt.Errorf("repositories: decode leads: %w", err)
	}
	for i := range leads {
		leads[i].Canonicalize()
	}
	return leads, store.NewPagination(page, limit, total), nil
}

// Update replaces a lead's editable fields. Status changes ride through
// here too; purchases never do.
func (r *LeadRepository) Update(ctx context.Context, lead models.Lead) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	res, err := r.col().ReplaceOne(ctx, bson.M{"_id": lead.ID}, lead)
	if err != nil {
		return fmt.Errorf("repositories: update lead %s: %w", lead.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one lead. Re-deleting is not idempotent: a second call
// reports ErrNotFound.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("repositories: delete lead %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of leads.
func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	defer metrics.ObserveDBQuery("count", time.Now())
	return r.col().EstimatedDocumentCount(ctx)
}

// CountByStatus counts leads with the given status.
func (r *LeadRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	defer metrics.ObserveDBQuery("count", time.Now())
	return r.col().CountDocuments(ctx, bson.M{"status": status})
}

// regexQuote escapes regex metacharacters so user search input is treated
// literally.
func regexQuote(s string) string {
	special := `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(special); j++ {
			if s[i] == special[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}
