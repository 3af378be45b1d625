package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/leadhub/app/jobs"
	"github.com/shashiranjanraj/leadhub/config"
	"github.com/shashiranjanraj/leadhub/database/seeders"
	"github.com/shashiranjanraj/leadhub/internal/store"
	"github.com/shashiranjanraj/leadhub/pkg/cache"
	"github.com/shashiranjanraj/leadhub/pkg/queue"
	"github.com/shashiranjanraj/leadhub/pkg/schedule"
	"github.com/shashiranjanraj/leadhub/pkg/storage"
)

var queueWorkersFlag int

func bootWorkerDeps(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := store.Connect(ctx); err != nil {
		return err
	}
	if err := cache.Connect(); err == nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	storage.Connect()
	queue.UseCollection(store.Collection(store.ColFailed))
	jobs.Register()
	return nil
}

// leadhub queue:work
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := bootWorkerDeps(ctx); err != nil {
			return err
		}
		defer store.Close(context.Background())

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 5
		}

		fmt.Printf("Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\nQueue worker stopped.")
		return nil
	},
}

// leadhub schedule:run
var scheduleRunCmd = &cobra.Command{
	Use:   "schedule:run",
	Short: "Start the task scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := bootWorkerDeps(ctx); err != nil {
			return err
		}
		defer store.Close(context.Background())

		schedule.Cron("0 3 * * *").WithoutOverlapping().Name("stats.rollup").Run(func() {
			if err := (jobs.StatsRollupJob{}).Handle(); err != nil {
				fmt.Println("stats rollup failed:", err)
			}
		})
		schedule.Start(ctx)

		for _, name := range schedule.List() {
			fmt.Println("scheduled:", name)
		}
		fmt.Println("Scheduler running. Press Ctrl+C to stop.")

		<-ctx.Done()
		return nil
	},
}

// leadhub seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := config.Load(); err != nil {
			return err
		}
		if err := store.Connect(ctx); err != nil {
			return err
		}
		defer store.Close(ctx)

		fmt.Println("Seeding database:")
		return seeders.RunAll(ctx)
	},
}
