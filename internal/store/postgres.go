package store

import (
	"context"
	_ "embed"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/jorguzz-fer/aquinaotem/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// PostgresStore is the production Store backed by a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a connection pool and fails fast if the database
// is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, errors.Wrap(err, "creating pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "pinging database")
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.pool.Exec(context.Background(), schemaSQL)
	return errors.Wrap(err, "applying schema")
}

// Ping is used by the readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// InsertSubmission assigns id and created_at server-side and writes one row.
func (p *PostgresStore) InsertSubmission(ctx context.Context, sub models.Submission) (string, error) {
	id := uuid.New().String()

	_, err := p.pool.Exec(ctx, `
		INSERT INTO submissions(id, city, category, text_original, comment, ip_hash, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,now())
	`, id, sub.City, sub.Category, sub.TextOriginal, sub.Comment, sub.IPHash)
	if err != nil {
		return "", errors.Wrap(err, "inserting submission")
	}

	return id, nil
}

// CountRecentSubmissions counts rows for ipHash with created_at >= since.
// The lower bound is inclusive so the window is [since, now].
func (p *PostgresStore) CountRecentSubmissions(ctx context.Context, ipHash string, since time.Time) (int64, error) {
	var count int64
	err := p.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM submissions
		WHERE ip_hash = $1
		  AND created_at >= $2
	`, ipHash, since).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "counting submissions")
	}

	return count, nil
}

// InsertMetric writes one UX timing row; loose fields were defaulted upstream.
func (p *PostgresStore) InsertMetric(ctx context.Context, m models.UxMetric) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO ux_metrics(session_id, page, ttfc_ms, first_focus_ms, device_type, referrer, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,now())
	`, m.SessionID, m.Page, m.TTFCMs, m.FirstFocusMs, m.DeviceType, m.Referrer)

	return errors.Wrap(err, "inserting metric")
}
