package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jorguzz-fer/aquinaotem/internal/models"
)

// MemoryStore keeps both append logs in process memory. It exists for tests
// and for running the service locally without Postgres; its windowed-count
// semantics match PostgresStore's exactly.
type MemoryStore struct {
	mu          sync.RWMutex
	submissions []models.Submission
	metrics     []models.UxMetric

	// now is swappable so tests can control window boundaries.
	now func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store using wall-clock time.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// SetClock overrides the timestamp source for inserted rows.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MemoryStore) InsertSubmission(ctx context.Context, sub models.Submission) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub.ID = uuid.New().String()
	sub.CreatedAt = m.now().UTC()
	m.submissions = append(m.submissions, sub)

	return sub.ID, nil
}

func (m *MemoryStore) CountRecentSubmissions(ctx context.Context, ipHash string, since time.Time) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, sub := range m.submissions {
		if sub.IPHash == nil || *sub.IPHash != ipHash {
			continue
		}
		if !sub.CreatedAt.Before(since) {
			count++
		}
	}

	return count, nil
}

func (m *MemoryStore) InsertMetric(ctx context.Context, metric models.UxMetric) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	metric.CreatedAt = m.now().UTC()
	m.metrics = append(m.metrics, metric)

	return nil
}

func (m *MemoryStore) Ping(ctx context.Context) error { return nil }

func (m *MemoryStore) Close() {}

// Submissions returns a copy of the submission log, oldest first.
func (m *MemoryStore) Submissions() []models.Submission {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Submission, len(m.submissions))
	copy(out, m.submissions)
	return out
}

// Metrics returns a copy of the UX metric log, oldest first.
func (m *MemoryStore) Metrics() []models.UxMetric {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.UxMetric, len(m.metrics))
	copy(out, m.metrics)
	return out
}
