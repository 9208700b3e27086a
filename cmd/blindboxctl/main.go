package main

import (
	"context"
	"log"
	"os"

	"github.com/mssbox/blindboxctl/internal/api"
	"github.com/mssbox/blindboxctl/internal/cli"
	"github.com/mssbox/blindboxctl/internal/config"
	"github.com/mssbox/blindboxctl/internal/logging"
	"github.com/mssbox/blindboxctl/internal/state"
	"github.com/mssbox/blindboxctl/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewText(os.Stderr, cfg.SlogLevel())

	// A broken session store must not take the UI down: fall back to an
	// in-memory store and run the session for this process only.
	var store storage.Store
	if sqliteStore, err := storage.Open(ctx, cfg.StorePath); err == nil {
		defer sqliteStore.Close()
		store = storage.NewDegraded(sqliteStore, logger)
	} else {
		logger.Warn(ctx, "session store unavailable, sessions will not persist", "path", cfg.StorePath, "error", err)
		store = storage.NewDegraded(storage.NewMemoryStore(), logger)
	}

	apiClient, err := api.New(cfg.BaseURL, cfg.Timeout, store, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	container := state.New(ctx, store, logger, cfg.NotifyTTL)

	app := cli.NewApp(apiClient, container, store, logger)
	apiClient.OnAuthFailure(app.OnAuthFailure)

	app.Run(ctx)
}
