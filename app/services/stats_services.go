package services

import (
	"context"
	"sync"
	"time"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/pkg/cache"
	"github.com/shashiranjanraj/leadhub/pkg/workerpool"
)

const (
	statsCacheKey = "leadhub:stats:overview"
	statsCacheTTL = 30 * time.Second
)

// StatsService computes the admin dashboard counters. The five counts are
// independent queries, so they run concurrently through the shared pool.
type StatsService struct {
	leads  *repositories.LeadRepository
	orders *repositories.OrderRepository
	stats  *repositories.StatsRepository
	pool   *workerpool.Pool
}

func NewStatsService(
	leads *repositories.LeadRepository,
	orders *repositories.OrderRepository,
	stats *repositories.StatsRepository,
	pool *workerpool.Pool,
) *StatsService {
	return &StatsService{leads: leads, orders: orders, stats: stats, pool: pool}
}

// Overview returns the current marketplace counters, cached briefly so a
// dashboard auto-refresh does not hammer Mongo.
func (s *StatsService) Overview(ctx context.Context) (repositories.StatsSnapshot, error) {
	var snap repositories.StatsSnapshot
	err := cache.Remember(statsCacheKey, statsCacheTTL, &snap, func() (interface{}, error) {
		return s.compute(ctx)
	})
	return snap, err
}

func (s *StatsService) compute(ctx context.Context) (repositories.StatsSnapshot, error) {
	var (
		snap     repositories.StatsSnapshot
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	record := func(err error) {
		mu.Lock()
		if firstErr == nil && err != nil {
			firstErr = err
		}
		mu.Unlock()
	}

	run := func(task func()) {
		wg.Add(1)
		wrapped := func() {
			defer wg.Done()
			task()
		}
		if err := s.pool.SubmitWait(wrapped); err != nil {
			// Pool shut down; run inline so the snapshot still completes.
			wrapped()
		}
	}

	run(func() {
		n, err := s.leads.Count(ctx)
		record(err)
		mu.Lock()
		snap.TotalLeads = n
		mu.Unlock()
	})
	run(func() {
		n, err := s.leads.CountByStatus(ctx, models.LeadAvailable)
		record(err)
		mu.Lock()
		snap.AvailableLeads = n
		mu.Unlock()
	})
	run(func() {
		n, err := s.orders.Count(ctx)
		record(err)
		mu.Lock()
		snap.TotalOrders = n
		mu.Unlock()
	})
	run(func() {
		total, err := s.orders.TotalRevenue(ctx)
		record(err)
		mu.Lock()
		snap.TotalRevenue = total
		mu.Unlock()
	})
	run(func() {
		n, err := s.orders.DistinctCustomers(ctx)
		record(err)
		mu.Lock()
		snap.TotalCustomers = n
		mu.Unlock()
	})

	wg.Wait()
	if firstErr != nil {
		return repositories.StatsSnapshot{}, firstErr
	}
	snap.RolledAt = time.Now()
	return snap, nil
}

// Rollup computes a fresh snapshot and persists it. Ran nightly by the
// scheduler so the dashboard can chart history.
func (s *StatsService) Rollup(ctx context.Context) error {
	snap, err := s.compute(ctx)
	if err != nil {
		return err
	}
	return s.stats.Save(ctx, snap)
}
