package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/copgauge/copgauge/internal/config"
	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/pipeline"
	"github.com/copgauge/copgauge/internal/store"
	"github.com/copgauge/copgauge/internal/tui"
	"github.com/copgauge/copgauge/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	org, err := resolveOrg(cfg)
	if err != nil {
		return err
	}

	// Force TrueColor so background styling always produces ANSI codes;
	// lipgloss may otherwise fall back to the Ascii profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	days := resolveDays(cfg)
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour

	loadUsage := func() ([]model.Snapshot, model.QualityReport, error) {
		cache := openCache()
		if cache != nil {
			defer func() { _ = cache.Close() }()
		}
		result, err := pipeline.LoadMetrics(context.Background(), metricsFetcher(cfg), cache, org, ttl)
		if err != nil {
			return nil, model.QualityReport{}, err
		}
		return pipeline.FilterWindow(result.Snapshots, days), result.Report, nil
	}

	loadPremium := func() (model.PremiumReport, error) {
		cache := openCache()
		if cache != nil {
			defer func() { _ = cache.Close() }()
		}
		now := time.Now()
		usage, _, err := pipeline.LoadPremium(context.Background(), premiumFetcher(cfg), cache, org, now.Year(), int(now.Month()), ttl)
		if err != nil {
			return model.PremiumReport{}, err
		}
		return pipeline.AggregatePremium(usage.UsageItems), nil
	}

	app := tui.New(tui.Options{
		Org:         org,
		Days:        days,
		TopN:        resolveTop(cfg),
		LoadUsage:   loadUsage,
		LoadPremium: loadPremium,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// openCache opens the payload cache unless --no-cache is set. A nil return
// means every load goes straight to the API.
func openCache() *store.Cache {
	if flagNoCache {
		return nil
	}
	cache, err := store.Open(config.CachePath())
	if err != nil {
		return nil
	}
	return cache
}
