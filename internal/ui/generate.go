package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) generateCmd() *cobra.Command {
	var (
		source  string
		horizon int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Replicate a master day onto the following days",
		Long: `Replicate the source day's schedule onto each of the following days.

Each target day is overwritten with fresh copies of the source programs,
all reset to scheduled status. The source day itself is left untouched.`,
		Example: `  slike-epg generate --source=2026-08-28 --days=15`,
		RunE: func(_ *cobra.Command, _ []string) error {
			sourceKey, err := resolveDayKey(source, time.Now())
			if err != nil {
				return err
			}
			if horizon < 1 {
				horizon = a.config.Window.MaxHorizon
			}

			ctx := context.Background()
			programs, err := a.store.LoadDay(ctx, sourceKey)
			if err != nil {
				return fmt.Errorf("loading source day %s: %w", sourceKey, err)
			}
			if len(programs) == 0 {
				return fmt.Errorf("source day %s has no programs", sourceKey)
			}

			result, err := a.store.ReplicateMaster(sourceKey, horizon)
			if err != nil {
				return err
			}
			if _, err := a.store.SaveAll(ctx); err != nil {
				return fmt.Errorf("saving replicated days: %w", err)
			}

			fmt.Printf("Replicated %d programs from %s onto %d day(s)\n",
				len(programs), sourceKey, len(result.ReplacedDayKeys))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Master day to replicate (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().IntVar(&horizon, "days", 0, "Number of following days to overwrite (default: configured horizon)")

	return cmd
}
