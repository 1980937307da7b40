// Package cmd implements the copgauge CLI commands.
package cmd

import (
	"fmt"

	"github.com/copgauge/copgauge/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.Organization != "" {
		fmt.Printf("    Organization: %s\n", cfg.General.Organization)
	} else {
		fmt.Println("    Organization: not set")
	}
	fmt.Printf("    Default days: %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Top N:        %d\n", cfg.General.TopN)
	fmt.Println()

	fmt.Println("  [GitHub]")
	token := config.GetToken(cfg)
	if token != "" {
		fmt.Printf("    Token:    %s\n", maskToken(token))
	} else {
		fmt.Println("    Token:    not configured (set GITHUB_TOKEN or run setup)")
	}
	if cfg.GitHub.BaseURL != "" {
		fmt.Printf("    Base URL: %s\n", cfg.GitHub.BaseURL)
	}
	fmt.Println()

	fmt.Println("  [Cache]")
	fmt.Printf("    Path: %s\n", config.CachePath())
	fmt.Printf("    TTL:  %dh\n", cfg.Cache.TTLHours)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `copgauge setup` to reconfigure.")
	return nil
}
