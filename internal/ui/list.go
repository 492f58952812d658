package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/program"
	"github.com/PallavSamaddar/slike-epg-sub000/internal/timeutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		date string
		end  string
		days int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled programs",
		Long: `List the programs scheduled for one or more days.

If no date is specified, lists today's schedule. The date flags accept
relative forms ("tomorrow", "friday", "next-week") as well as YYYY-MM-DD.`,
		Example: `  slike-epg list
  slike-epg list --date=2026-08-28 --days=3
  slike-epg list --date=tomorrow --end=next-friday`,
		RunE: func(_ *cobra.Command, _ []string) error {
			keys, err := listDayKeys(date, end, days, time.Now())
			if err != nil {
				return err
			}

			ctx := context.Background()
			total := 0
			for i, key := range keys {
				programs, err := a.store.LoadDay(ctx, key)
				if err != nil {
					return fmt.Errorf("loading day %s: %w", key, err)
				}
				printDay(key, programs, a.store.DayStats(key))
				total += len(programs)
				if i < len(keys)-1 {
					fmt.Println()
				}
			}

			if total == 0 {
				fmt.Println(formatMuted("No programs scheduled."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "First day to list (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().StringVar(&end, "end", "", "Last day of the range to list (inclusive)")
	cmd.Flags().IntVar(&days, "days", 1, "Number of consecutive days to list (ignored with --end)")

	return cmd
}

func printDay(dayKey string, programs []*program.Program, stats program.DayStats) {
	fmt.Println(formatHeader(fmt.Sprintf("=== %s ===", dayKey)))
	if len(programs) == 0 {
		fmt.Println(formatMuted("  (empty)"))
		return
	}

	titleWidth := termWidth() - 40
	if titleWidth < 16 {
		titleWidth = 16
	}
	for _, p := range programs {
		title := p.Title
		if len([]rune(title)) > titleWidth {
			title = string([]rune(title)[:titleWidth-1]) + "…"
		}
		row := fmt.Sprintf("  %-16s %-*s %-9s %s",
			p.TimeRange(), titleWidth, title, p.Status, strings.Join(p.Tags, ","))
		fmt.Println(formatStatus(p.IsScheduled(), p.IsLive(), row))
		if len(p.Videos) > 0 {
			fmt.Println(formatMuted(fmt.Sprintf("    %d video(s), %s",
				len(p.Videos), timeutil.DurationLabel(p.TotalVideoMinutes()))))
		}
	}
	fmt.Println(formatMuted(fmt.Sprintf("  %d program(s), %s airtime",
		stats.TotalPrograms, timeutil.DurationLabel(stats.TotalMinutes()))))
}
