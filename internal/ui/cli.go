// Package ui provides the command-line surface for slike-epg.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/config"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/schedule"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/storage"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  *schedule.Store
	kv     storage.KeyValueStore
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given store and config.
func NewApp(store *schedule.Store, kv storage.KeyValueStore, cfg *config.Config) *App {
	a := &App{store: store, kv: kv, config: cfg}

	a.root = &cobra.Command{
		Use:   "slike-epg",
		Short: "A broadcast channel EPG schedule editor",
		Long: `slike-epg manages a broadcast channel's electronic program guide:
a day-partitioned program schedule that editors rearrange, extend, and
replicate across a rolling multi-day horizon.

Running without a subcommand opens the interactive schedule editor.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.config, a.store)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.generateCmd())
	a.root.AddCommand(a.adsCmd())
	a.root.AddCommand(a.saveCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("slike-epg %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the persistence backend.
func (a *App) Close() error {
	if a.kv == nil {
		return nil
	}
	return a.kv.Close()
}
