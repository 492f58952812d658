package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/schedule"
)

func (a *App) saveCmd() *cobra.Command {
	var finalize bool

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Persist all unsaved day schedules",
		Long: `Persist every day with unsaved changes.

With --finalize the save is treated as the channel's first publish and is
refused while the schedule holds no programs at all.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			var (
				saved []string
				err   error
			)
			if finalize {
				saved, err = a.store.Finalize(ctx)
			} else {
				saved, err = a.store.SaveAll(ctx)
			}
			if errors.Is(err, schedule.ErrNothingToSave) {
				fmt.Println("Nothing to save.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Saved %d day(s): %s\n", len(saved), strings.Join(saved, ", "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&finalize, "finalize", false, "Refuse to save an entirely empty schedule")

	return cmd
}
