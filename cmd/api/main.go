package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/jorguzz-fer/aquinaotem/internal/categorize"
	"github.com/jorguzz-fer/aquinaotem/internal/config"
	"github.com/jorguzz-fer/aquinaotem/internal/httpserver"
	"github.com/jorguzz-fer/aquinaotem/internal/store"
)

// main boots the service: config → DB → schema → HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewPostgresStore(cfg.DBURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Ensure required tables/indexes exist so `docker compose up --build` is enough.
	if err := db.EnsureSchema(); err != nil {
		log.Fatal(err)
	}

	// The categorizer variant is picked once here; handlers never look at
	// configuration again.
	var cat categorize.Categorizer = categorize.Disabled{}
	if cfg.OpenAIKey != "" {
		cat = categorize.NewOpenAI(cfg.OpenAIKey)
		log.Info("AI categorization enabled")
	} else {
		log.Info("OPENAI_API_KEY not set, AI categorization disabled")
	}

	router := httpserver.NewRouter(cfg, db, cat)

	log.WithField("addr", cfg.ListenAddr).Info("server started")
	log.Fatal(router.Run(cfg.ListenAddr))
}
