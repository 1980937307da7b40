package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/copgauge/copgauge/internal/config"
	"github.com/copgauge/copgauge/internal/daemon"
	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr     string
	flagServeInterval time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the background usage monitor with an HTTP status API",
	Long: "Polls the Copilot metrics feed on an interval and serves usage snapshots\n" +
		"over HTTP: /healthz, /v1/status, /v1/events, and an SSE stream at /v1/stream.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "127.0.0.1:8787", "Listen address")
	serveCmd.Flags().DurationVar(&flagServeInterval, "interval", 15*time.Minute, "Poll interval")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config error, using defaults: %v\n", err)
	}

	org, err := resolveOrg(cfg)
	if err != nil {
		return err
	}

	days := resolveDays(cfg)
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour

	load := func(ctx context.Context) ([]model.Snapshot, error) {
		cache := openCache()
		if cache != nil {
			defer func() { _ = cache.Close() }()
		}
		result, err := pipeline.LoadMetrics(ctx, metricsFetcher(cfg), cache, org, ttl)
		if err != nil {
			return nil, err
		}
		return pipeline.FilterWindow(result.Snapshots, days), nil
	}

	svc := daemon.New(daemon.Config{
		Org:      org,
		Days:     days,
		Interval: flagServeInterval,
		Addr:     flagServeAddr,
		Load:     load,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "  Monitoring %s on %s (every %s)\n", org, flagServeAddr, flagServeInterval)
	return svc.Run(ctx)
}
