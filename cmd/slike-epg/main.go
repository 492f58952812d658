package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/config"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/notify"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/schedule"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/storage"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	kv, err := storage.NewSQLite(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	store := schedule.NewStore(kv,
		schedule.WithSlotMinutes(cfg.Schedule.SlotMinutes),
		schedule.WithNotifier(notify.New()),
	)

	app := ui.NewApp(store, kv, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
