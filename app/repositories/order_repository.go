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

// OrderRepository handles the orders collection.
type OrderRepository struct {
	name string
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{name: store.ColOrders}
}

// col resolves the collection lazily so repositories can be built
// before the database connection exists.
func (r *OrderRepository) col() *mongo.Collection {
	return store.Collection(r.name)
}

// CreateMany writes one order per cart line in a single batched operation.
func (r *OrderRepository) CreateMany(ctx context.Context, orders []models.Order) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	docs := make([]interface{}, len(orders))
	for i := range orders {
		docs[i] = orders[i]
	}
	if _, err := store.InsertInBatches(ctx, r.col(), docs, nil); err != nil {
		return fmt.Errorf("repositories: create orders: %w", err)
	}
	return nil
}

// FindByID returns one order.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Order{}, ErrNotFound
	}

	var order models.Order
	if err := r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, fmt.Errorf("repositories: find order %s: %w", id, err)
	}
	return order, nil
}

// ByUser lists a buyer's orders, newest purchase first.
func (r *OrderRepository) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "purchasedAt", Value: -1}})
	cur, err := r.col().Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("repositories: orders for user: %w", err)
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("repositories: decode orders: %w", err)
	}
	return orders, nil
}

// All lists every order for the admin table, newest first.
func (r *OrderRepository) All(ctx context.Context, page, limit int) ([]models.Order, store.Pagination, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = store.BatchSize
	}

	total, err := r.col().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, store.Pagination{}, fmt.Errorf("repositories: count orders: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "purchasedAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.col().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, store.Pagination{}, fmt.Errorf("repositories: list orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, store.Pagination{}, fmt.Errorf("repositories: decode orders: %w", err)
	}
	return orders, store.NewPagination(page, limit, total), nil
}

// Confirm sets the order's status to confirmed and touches nothing else.
// Confirming an already-confirmed order is a no-op at this layer.
func (r *OrderRepository) Confirm(ctx context.Context, id string) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.col().UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": models.OrderConfirmed}},
	)
	if err != nil {
		return fmt.Errorf("repositories: confirm order %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of orders.
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	defer metrics.ObserveDBQuery("count", time.Now())
	return r.col().EstimatedDocumentCount(ctx)
}

// TotalRevenue sums the price of every order, pending and confirmed alike.
func (r *OrderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	defer metrics.ObserveDBQuery("count", time.Now())

	cur, err := r.col().Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$price"}}}},
	})
	if err != nil {
		return 0, fmt.Errorf("repositories: revenue aggregate: %w", err)
	}
	defer cur.Close(ctx)

	var out []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, fmt.Errorf("repositories: decode revenue: %w", err)
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

// DistinctCustomers counts unique buyers across all orders.
func (r *OrderRepository) DistinctCustomers(ctx context.Context) (int64, error) {
	defer metrics.ObserveDBQuery("count", time.Now())

	ids, err := r.col().Distinct(ctx, "userId", bson.M{})
	if err != nil {
		return 0, fmt.Errorf("repositories: distinct customers: %w", err)
	}
	return int64(len(ids)), nil
}
