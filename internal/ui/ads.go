package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/schedule"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/timeutil"
)

func (a *App) adsCmd() *cobra.Command {
	var (
		date      string
		campaign  string
		frequency string
		duration  string
	)

	cmd := &cobra.Command{
		Use:   "ads",
		Short: "Preview ad markers for a day",
		Long: `Generate and print the ad marker timeline for a day.

Markers are placed at a fixed frequency from midnight to the end of the
day. A frequency of "00:30hr" yields one marker every half hour.`,
		Example: `  slike-epg ads --date=2026-08-28 --frequency=00:30hr`,
		RunE: func(_ *cobra.Command, _ []string) error {
			dayKey, err := resolveDayKey(date, time.Now())
			if err != nil {
				return err
			}
			if frequency == "" {
				frequency = a.config.Ads.DefaultFrequency
			}
			if duration == "" {
				duration = a.config.Ads.DefaultDuration
			}

			markers := schedule.GenerateMarkers(dayKey, campaign, duration, frequency)
			fmt.Println(formatHeader(fmt.Sprintf("=== %s — %d markers (%s every %s) ===",
				dayKey, len(markers), duration, frequency)))
			for _, m := range markers {
				fmt.Printf("  %s  %s\n", timeutil.Format12h(timeutil.ToMinutes(m.Time)), formatMuted(m.DurationLabel))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day key (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().StringVar(&campaign, "campaign", "default", "Campaign identifier")
	cmd.Flags().StringVar(&frequency, "frequency", "", `Marker frequency ("HH:MMhr", default: configured)`)
	cmd.Flags().StringVar(&duration, "duration", "", "Marker duration label (default: configured)")

	return cmd
}
