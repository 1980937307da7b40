package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/copgauge/copgauge/internal/config"
	"github.com/copgauge/copgauge/internal/github"
	"github.com/copgauge/copgauge/internal/pipeline"
	"github.com/copgauge/copgauge/internal/source"
	"github.com/copgauge/copgauge/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagOrg     string
	flagDays    int
	flagTop     int
	flagInput   string
	flagNoCache bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "copgauge",
	Short: "GitHub Copilot org metrics CLI",
	Long:  "Analyze your organization's Copilot usage: suggestions, acceptance rates, chat, and premium request costs.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOrg, "org", "o", "", "GitHub organization (defaults to config)")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Time window in days (defaults to config)")
	rootCmd.PersistentFlags().IntVar(&flagTop, "top", 0, "Ranked list length (defaults to config)")
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "Read metrics from local JSON exports instead of the API")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the payload cache, always fetch")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// resolveOrg returns the org from the flag or config, in that order.
func resolveOrg(cfg config.Config) (string, error) {
	if flagOrg != "" {
		return flagOrg, nil
	}
	if cfg.General.Organization != "" {
		return cfg.General.Organization, nil
	}
	return "", fmt.Errorf("no organization set; pass --org or run `copgauge setup`")
}

func resolveDays(cfg config.Config) int {
	if flagDays > 0 {
		return flagDays
	}
	return cfg.General.DefaultDays
}

func resolveTop(cfg config.Config) int {
	if flagTop > 0 {
		return flagTop
	}
	if cfg.General.TopN > 0 {
		return cfg.General.TopN
	}
	return pipeline.DefaultTopN
}

// loadData is the shared metrics loading path used by all usage commands.
// It serves fresh cached payloads when available and notes data-quality
// anomalies on stderr.
func loadData() (*pipeline.LoadResult, string, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config error, using defaults: %v\n", err)
	}

	// Offline mode: read exported payloads from disk, skip the API and cache.
	if flagInput != "" {
		org := flagOrg
		if org == "" {
			org = cfg.General.Organization
		}
		if org == "" {
			org = filepath.Base(flagInput)
		}
		result, err := loadFromDir(flagInput, cfg)
		if err != nil {
			return nil, "", err
		}
		return result, org, nil
	}

	org, err := resolveOrg(cfg)
	if err != nil {
		return nil, "", err
	}

	var cache *store.Cache
	if !flagNoCache {
		cache, err = store.Open(config.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, fetching directly\n")
			}
			cache = nil
		} else {
			defer func() { _ = cache.Close() }()
		}
	}

	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading Copilot metrics for %s...\n", org)
	}

	result, err := pipeline.LoadMetrics(context.Background(), metricsFetcher(cfg), cache, org, ttl)
	if err != nil {
		return nil, "", err
	}

	result.Snapshots = pipeline.FilterWindow(result.Snapshots, resolveDays(cfg))

	if !flagQuiet {
		if result.FromCache {
			fmt.Fprintf(os.Stderr, "  Using cached data from %s\n",
				result.FetchedAt.Local().Format("2006-01-02 15:04"))
		}
		if result.Report.SkippedSnapshots > 0 {
			fmt.Fprintf(os.Stderr, "  %d day records skipped (missing date)\n", result.Report.SkippedSnapshots)
		}
		if result.Report.DroppedEntities > 0 {
			fmt.Fprintf(os.Stderr, "  %d unnamed breakdown entries dropped\n", result.Report.DroppedEntities)
		}
	}

	return result, org, nil
}

// metricsFetcher returns the API client as a loader interface. A missing
// token yields a nil interface, not a typed nil, so the loader's cache-only
// path engages instead of a call on a nil client.
func metricsFetcher(cfg config.Config) pipeline.MetricsFetcher {
	if c := github.NewClient(config.GetToken(cfg), cfg.GitHub.BaseURL); c != nil {
		return c
	}
	return nil
}

func premiumFetcher(cfg config.Config) pipeline.PremiumFetcher {
	if c := github.NewClient(config.GetToken(cfg), cfg.GitHub.BaseURL); c != nil {
		return c
	}
	return nil
}

// loadFromDir builds a load result from local metrics exports.
func loadFromDir(dir string, cfg config.Config) (*pipeline.LoadResult, error) {
	days, badFiles, err := source.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading exports from %s: %w", dir, err)
	}
	if badFiles > 0 && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %d unreadable export files skipped\n", badFiles)
	}

	snaps, report := pipeline.NormalizeAll(days)
	result := &pipeline.LoadResult{
		Snapshots: pipeline.FilterWindow(snaps, resolveDays(cfg)),
		Report:    report,
		FetchedAt: time.Now(),
	}

	if !flagQuiet {
		if report.SkippedSnapshots > 0 {
			fmt.Fprintf(os.Stderr, "  %d day records skipped (missing date)\n", report.SkippedSnapshots)
		}
		if report.DroppedEntities > 0 {
			fmt.Fprintf(os.Stderr, "  %d unnamed breakdown entries dropped\n", report.DroppedEntities)
		}
	}

	return result, nil
}

// printNoData renders the explicit no-data state for an empty window, so a
// missing feed is never mistaken for real zero usage.
func printNoData(org string) {
	fmt.Printf("\n  No Copilot usage data available for %s.\n", org)
	fmt.Println("  Metrics appear once the org has 5+ active Copilot licenses.")
}
