package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PallavSamaddar/slike-epg-sub000/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  slike-epg config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.Schedule.Channel = promptValue(reader, "Channel name", cfg.Schedule.Channel)
	cfg.Schedule.GeoZone = promptValue(reader, "Default geo zone", cfg.Schedule.GeoZone)
	cfg.Schedule.SlotMinutes = promptInt(reader, "Slot length (minutes)", cfg.Schedule.SlotMinutes)
	cfg.Schedule.DefaultDuration = promptInt(reader, "Default program duration (minutes)", cfg.Schedule.DefaultDuration)
	cfg.Window.InitialDays = promptInt(reader, "Initial window days", cfg.Window.InitialDays)
	cfg.Window.ChunkDays = promptInt(reader, "Expansion chunk days", cfg.Window.ChunkDays)
	cfg.Window.MaxHorizon = promptInt(reader, "Maximum horizon days", cfg.Window.MaxHorizon)
	cfg.Ads.DefaultFrequency = promptValue(reader, `Ad frequency ("HH:MMhr")`, cfg.Ads.DefaultFrequency)
	cfg.Ads.DefaultDuration = promptValue(reader, "Ad duration label", cfg.Ads.DefaultDuration)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptValue(reader, "UI theme (dark/light)", cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[schedule]")
	fmt.Printf("  channel          = %s\n", cfg.Schedule.Channel)
	fmt.Printf("  geo_zone         = %s\n", cfg.Schedule.GeoZone)
	fmt.Printf("  slot_minutes     = %d\n", cfg.Schedule.SlotMinutes)
	fmt.Printf("  default_duration = %d\n", cfg.Schedule.DefaultDuration)
	fmt.Println("\n[window]")
	fmt.Printf("  initial_days     = %d\n", cfg.Window.InitialDays)
	fmt.Printf("  chunk_days       = %d\n", cfg.Window.ChunkDays)
	fmt.Printf("  max_horizon      = %d\n", cfg.Window.MaxHorizon)
	fmt.Println("\n[ads]")
	fmt.Printf("  frequency        = %s\n", cfg.Ads.DefaultFrequency)
	fmt.Printf("  duration         = %s\n", cfg.Ads.DefaultDuration)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme            = %s\n", cfg.UI.Theme)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		input := promptValue(reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(input)
		if err == nil {
			return n
		}
		fmt.Printf("  Invalid number %q.\n", input)
	}
}
