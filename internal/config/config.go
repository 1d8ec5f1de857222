package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr      = ":8080"
	defaultCity            = "Osasco"
	defaultRateLimitMax    = 10
	defaultRateLimitWindow = 60 * time.Second
)

// Config contains runtime configuration required by the service.
type Config struct {
	DBURL      string
	ListenAddr string
	City       string

	// OpenAIKey enables AI categorization when set. Empty disables the
	// categorizer entirely; no other behavior changes.
	OpenAIKey string

	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Load reads required values from environment variables.
// Only DB_URL is mandatory; everything else has a working default.
func Load() (Config, error) {
	cfg := Config{
		DBURL:           strings.TrimSpace(os.Getenv("DB_URL")),
		ListenAddr:      defaultListenAddr,
		City:            defaultCity,
		OpenAIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		RateLimitMax:    defaultRateLimitMax,
		RateLimitWindow: defaultRateLimitWindow,
	}

	if cfg.DBURL == "" {
		return Config{}, errors.New("DB_URL required")
	}

	if v := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); v != "" {
		cfg.ListenAddr = v
	}

	if v := strings.TrimSpace(os.Getenv("CITY")); v != "" {
		cfg.City = v
	}

	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_MAX")); v != "" {
		max, err := strconv.Atoi(v)
		if err != nil || max < 1 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_MAX %q", v)
		}
		cfg.RateLimitMax = max
	}

	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_WINDOW")); v != "" {
		window, err := time.ParseDuration(v)
		if err != nil || window <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_WINDOW %q", v)
		}
		cfg.RateLimitWindow = window
	}

	return cfg, nil
}
