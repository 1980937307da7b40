package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/config"
	"github.com/copgauge/copgauge/internal/pipeline"
	"github.com/copgauge/copgauge/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagYear  int
	flagMonth int
)

var premiumCmd = &cobra.Command{
	Use:   "premium",
	Short: "Premium request costs per model",
	RunE:  runPremium,
}

func init() {
	premiumCmd.Flags().IntVar(&flagYear, "year", 0, "Billing year (defaults to current)")
	premiumCmd.Flags().IntVar(&flagMonth, "month", 0, "Billing month 1-12 (defaults to current)")
	rootCmd.AddCommand(premiumCmd)
}

func runPremium(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config error, using defaults: %v\n", err)
	}

	org, err := resolveOrg(cfg)
	if err != nil {
		return err
	}

	now := time.Now()
	year, month := flagYear, flagMonth
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %d, want 1-12", month)
	}

	var cache *store.Cache
	if !flagNoCache {
		if cache, err = store.Open(config.CachePath()); err != nil {
			cache = nil
		} else {
			defer func() { _ = cache.Close() }()
		}
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading premium request usage for %s (%d-%02d)...\n", org, year, month)
	}

	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
	usage, fromCache, err := pipeline.LoadPremium(context.Background(), premiumFetcher(cfg), cache, org, year, month, ttl)
	if err != nil {
		return err
	}
	if fromCache && !flagQuiet {
		fmt.Fprintln(os.Stderr, "  Using cached billing data")
	}

	report := pipeline.AggregatePremium(usage.UsageItems)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PREMIUM REQUESTS  %s", org)))
	fmt.Println()
	fmt.Printf("  %d-%02d\n\n", year, month)

	if report.IsEmpty() {
		fmt.Println("  No premium request usage recorded for this period.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Requests", cli.FormatNumber(report.Requests)},
			{"Included", cli.FormatNumber(report.IncludedRequests)},
			{"Billed", cli.FormatNumber(report.BilledRequests)},
			{"---"},
			{"Gross Cost", cli.FormatUSD(report.Gross)},
			{"Discount", cli.FormatUSD(report.Discount)},
			{"Net Cost", cli.FormatUSD(report.Net)},
		},
	}))

	rows := make([][]string, 0, len(report.Models))
	for _, m := range report.Models {
		rows = append(rows, []string{
			m.Model,
			cli.FormatNumber(m.Requests),
			cli.FormatUSD(m.Gross),
			cli.FormatUSD(m.Discount),
			cli.FormatUSD(m.Net),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By model",
		Headers: []string{"Model", "Requests", "Gross", "Discount", "Net"},
		Rows:    rows,
	}))

	return nil
}
