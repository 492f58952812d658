package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/timeutil"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date        string
		start       string
		duration    int
		contentType string
		geoZone     string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a program to a day's schedule",
		Long: `Add a new program to the schedule.

Example:
  slike-epg add "Morning News" --date=2026-08-28 --start=09:00 --duration=60`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dayKey, err := resolveDayKey(date, time.Now())
			if err != nil {
				return err
			}
			if !timeutil.ValidClock(start) {
				return fmt.Errorf("invalid start time %q: expected HH:MM", start)
			}
			if duration <= 0 {
				duration = a.config.Schedule.DefaultDuration
			}

			ctx := context.Background()
			if _, err := a.store.LoadDay(ctx, dayKey); err != nil {
				return fmt.Errorf("loading day %s: %w", dayKey, err)
			}

			p, err := program.New(args[0], contentType, dayKey, timeutil.ToMinutes(start), duration)
			if err != nil {
				return err
			}
			if geoZone == "" {
				geoZone = a.config.Schedule.GeoZone
			}
			p.GeoZone = geoZone
			p.Tags = tags

			if _, err := a.store.AddProgram(dayKey, p); err != nil {
				return err
			}
			if err := a.store.SaveDay(ctx, dayKey); err != nil {
				return fmt.Errorf("saving day %s: %w", dayKey, err)
			}

			fmt.Printf("Added %q [%s] %s %s\n", p.Title, p.ContentType, dayKey, p.TimeRange())
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day key (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes (default: configured slot length)")
	cmd.Flags().StringVar(&contentType, "type", string(program.ContentVOD), "Content type: VOD or Event")
	cmd.Flags().StringVar(&geoZone, "geo", "", "Geo zone (default: configured zone)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")

	_ = cmd.MarkFlagRequired("start")

	return cmd
}
