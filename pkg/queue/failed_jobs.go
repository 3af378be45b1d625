package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// FailedJobRecord is the document persisted for each exhausted job.
type FailedJobRecord struct {
	JobType  string    `bson:"jobType" json:"jobType"`
	Payload  string    `bson:"payload" json:"payload"`
	Error    string    `bson:"error" json:"error"`
	Attempts int       `bson:"attempts" json:"attempts"`
	FailedAt time.Time `bson:"failedAt" json:"failedAt"`
}

// failedJobCol is the optional Mongo backend for persisting failed jobs.
// Set via UseCollection() — nil means in-memory only.
var failedJobCol *mongo.Collection

// UseCollection configures the queue to persist failed jobs to Mongo.
// Call once at boot, after the database connection exists.
func UseCollection(col *mongo.Collection) {
	failedJobCol = col
}

// persistFailed writes a failed job record to Mongo (if configured) and
// always appends to the in-memory slice as a fallback.
func (m *Manager) persistFailed(job Job, typeName string, lastErr error, attempts int) {
	m.mu.Lock()
	m.failed = append(m.failed, FailedJob{
		Job: job, Err: lastErr, FailedAt: time.Now(), Attempts: attempts,
	})
	m.mu.Unlock()

	if failedJobCol == nil {
		return
	}

	payload, err := json.Marshal(job)
	if err != nil {
		payload = []byte(fmt.Sprintf(`{"error": "could not marshal: %v"}`, err))
	}

	record := FailedJobRecord{
		JobType:  typeName,
		Payload:  string(payload),
		Error:    lastErr.Error(),
		Attempts: attempts,
		FailedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := failedJobCol.InsertOne(ctx, record); err != nil {
		// Non-fatal, the in-memory slice still has it.
		// logger is not imported here to avoid an import cycle.
		fmt.Printf("queue: failed to persist failed job %s: %v\n", typeName, err)
	}
}
