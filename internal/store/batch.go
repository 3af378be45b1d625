package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/leadhub/pkg/collection"
)

// BatchSize is the maximum number of documents per InsertMany call.
// Bulk flows (import, checkout) never exceed it.
const BatchSize = 100

// ProgressFunc receives the running written count after each batch lands.
type ProgressFunc func(written, total int)

// InsertInBatches writes docs to col in sequential InsertMany chunks of at
// most BatchSize. Each batch is acknowledged before the next is sent. On a
// batch failure the loop stops and returns the count written so far; there
// is no rollback of earlier batches.
func InsertInBatches(ctx context.Context, col *mongo.Collection, docs []interface{}, onProgress ProgressFunc) (int, error) {
	total := len(docs)
	written := 0

	for i, batch := range collection.Chunk(docs, BatchSize) {
		if _, err := col.InsertMany(ctx, batch); err != nil {
			return written, fmt.Errorf("store: insert batch %d-%d of %d: %w",
				i*BatchSize, i*BatchSize+len(batch), total, err)
		}

		written += len(batch)
		if onProgress != nil {
			onProgress(written, total)
		}
	}

	return written, nil
}
