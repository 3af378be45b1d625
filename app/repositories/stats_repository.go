package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/leadhub/internal/store"
	"github.com/shashiranjanraj/leadhub/pkg/metrics"
)

// StatsSnapshot is one daily rollup of the marketplace counters.
type StatsSnapshot struct {
	TotalLeads     int64     `bson:"totalLeads" json:"totalLeads"`
	AvailableLeads int64     `bson:"availableLeads" json:"availableLeads"`
	TotalOrders    int64     `bson:"totalOrders" json:"totalOrders"`
	TotalRevenue   float64   `bson:"totalRevenue" json:"totalRevenue"`
	TotalCustomers int64     `bson:"totalCustomers" json:"totalCustomers"`
	RolledAt       time.Time `bson:"rolledAt" json:"rolledAt"`
}

// StatsRepository persists rollup snapshots.
type StatsRepository struct {
	name string
}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{name: store.ColStats}
}

// col resolves the collection lazily so repositories can be built
// before the database connection exists.
func (r *StatsRepository) col() *mongo.Collection {
	return store.Collection(r.name)
}

// Save appends one snapshot.
func (r *StatsRepository) Save(ctx context.Context, s StatsSnapshot) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if _, err := r.col().InsertOne(ctx, s); err != nil {
		return fmt.Errorf("repositories: save stats snapshot: %w", err)
	}
	return nil
}
