package main

import (
	"fmt"
	"log"
	"os"

	"polareye/dataset"
	"polareye/models"
)

type App struct {
	cfg   Config
	store *dataset.Store
}

func newApp(cfg Config) (*App, error) {
	info, err := os.Stat(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir %q: %w", cfg.DataDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data dir %q is not a directory", cfg.DataDir)
	}

	app := &App{
		cfg:   cfg,
		store: dataset.NewStore(cfg.DataDir),
	}

	// Warm the cache once so load problems show up at startup, not on the
	// first request. A missing growth workbook is fatal for every growth
	// endpoint but the server still starts, mirroring how environment
	// endpoints stay usable.
	env := app.store.Environment()
	for _, issue := range env.Issues {
		log.Printf("environment: %s: %s", issue.Site, issue.Reason)
	}
	log.Printf("environment: %d records across %d site(s)", env.Len(), len(env.Order))

	if growth, err := app.store.Growth(); err != nil {
		log.Printf("growth: %v", err)
	} else {
		log.Printf("growth: %d plants across %d site(s)", growth.Len(), len(growth.Order))
	}

	_ = models.Sites // fixed enumeration, loaded eagerly above
	return app, nil
}
