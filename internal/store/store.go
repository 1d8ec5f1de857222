// Package store is the durable persistence layer. Both entity types are
// append-only: the service never updates or deletes a row once written.
package store

import (
	"context"
	"time"

	"github.com/jorguzz-fer/aquinaotem/internal/models"
)

// Store abstracts persistence so handlers can run against Postgres in
// production and the in-memory implementation in tests.
type Store interface {
	// InsertSubmission appends one validated submission and returns the
	// server-assigned id. ID and CreatedAt on the input are ignored.
	InsertSubmission(ctx context.Context, sub models.Submission) (string, error)

	// CountRecentSubmissions counts submissions whose ip_hash matches and
	// whose created_at is at or after since (inclusive lower bound). The
	// rate limiter derives its sliding window from this.
	CountRecentSubmissions(ctx context.Context, ipHash string, since time.Time) (int64, error)

	// InsertMetric appends one UX timing sample.
	InsertMetric(ctx context.Context, m models.UxMetric) error

	// Ping is used by the readiness endpoint to validate connectivity.
	Ping(ctx context.Context) error

	Close()
}
