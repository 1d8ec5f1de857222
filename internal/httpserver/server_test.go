package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/jorguzz-fer/aquinaotem/internal/categorize"
	"github.com/jorguzz-fer/aquinaotem/internal/config"
	"github.com/jorguzz-fer/aquinaotem/internal/models"
	"github.com/jorguzz-fer/aquinaotem/internal/store"
)

// unreachableStore simulates a store whose backend is down.
type unreachableStore struct{}

func (unreachableStore) InsertSubmission(ctx context.Context, sub models.Submission) (string, error) {
	return "", errors.New("store unavailable")
}

func (unreachableStore) CountRecentSubmissions(ctx context.Context, ipHash string, since time.Time) (int64, error) {
	return 0, errors.New("store unavailable")
}

func (unreachableStore) InsertMetric(ctx context.Context, m models.UxMetric) error {
	return errors.New("store unavailable")
}

func (unreachableStore) Ping(ctx context.Context) error {
	return errors.New("store unavailable")
}

func (unreachableStore) Close() {}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func testConfig() config.Config {
	return config.Config{City: "Osasco", RateLimitMax: 10, RateLimitWindow: 60 * time.Second}
}

func TestHealth(t *testing.T) {
	h := NewRouter(testConfig(), store.NewMemoryStore(), categorize.Disabled{})
	assert.Equal(t, http.StatusOK, get(h, "/health").Code)
}

func TestReady(t *testing.T) {
	h := NewRouter(testConfig(), store.NewMemoryStore(), categorize.Disabled{})
	assert.Equal(t, http.StatusOK, get(h, "/ready").Code)
}

func TestReadyReportsStoreOutage(t *testing.T) {
	h := NewRouter(testConfig(), unreachableStore{}, categorize.Disabled{})
	assert.Equal(t, http.StatusServiceUnavailable, get(h, "/ready").Code)
}

func TestHealthStaysUpDuringStoreOutage(t *testing.T) {
	h := NewRouter(testConfig(), unreachableStore{}, categorize.Disabled{})
	assert.Equal(t, http.StatusOK, get(h, "/health").Code)
}
