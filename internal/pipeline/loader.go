package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/copgauge/copgauge/internal/github"
	"github.com/copgauge/copgauge/internal/model"
	"github.com/copgauge/copgauge/internal/store"
)

// MetricsFetcher fetches the raw daily metrics feed for an org.
type MetricsFetcher interface {
	FetchMetrics(ctx context.Context, org string) ([]github.MetricsDay, error)
}

// PremiumFetcher fetches the raw premium billing feed for one month.
type PremiumFetcher interface {
	FetchPremiumUsage(ctx context.Context, org string, year, month int) (*github.PremiumUsage, error)
}

// LoadResult holds the output of the metrics loading path.
type LoadResult struct {
	Snapshots []model.Snapshot
	Report    model.QualityReport
	FromCache bool
	FetchedAt time.Time
}

// LoadMetrics returns normalized snapshots for an org, serving the cached
// payload when it is younger than ttl and falling back to a stale cache when
// the network fails. cache may be nil to force a fetch; fetcher may be nil
// when only cached data should ever be used.
func LoadMetrics(ctx context.Context, fetcher MetricsFetcher, cache *store.Cache, org string, ttl time.Duration) (*LoadResult, error) {
	var stale []byte
	var staleAt time.Time

	if cache != nil {
		payload, fetchedAt, ok, err := cache.GetMetrics(org)
		if err == nil && ok {
			if time.Since(fetchedAt) < ttl || fetcher == nil {
				return decodeMetrics(payload, true, fetchedAt)
			}
			stale, staleAt = payload, fetchedAt
		}
	}

	if fetcher == nil {
		return nil, fmt.Errorf("no cached metrics for %s and no client configured", org)
	}

	days, err := fetcher.FetchMetrics(ctx, org)
	if err != nil {
		if stale != nil {
			// Stale data beats no data; the caller sees FetchedAt and can warn.
			return decodeMetrics(stale, true, staleAt)
		}
		return nil, err
	}

	payload, merr := json.Marshal(days)
	if merr == nil && cache != nil {
		_ = cache.SaveMetrics(org, payload) // cache write failure is not fatal
	}

	snaps, report := NormalizeAll(days)
	return &LoadResult{
		Snapshots: snaps,
		Report:    report,
		FetchedAt: time.Now(),
	}, nil
}

func decodeMetrics(payload []byte, fromCache bool, fetchedAt time.Time) (*LoadResult, error) {
	var days []github.MetricsDay
	if err := json.Unmarshal(payload, &days); err != nil {
		return nil, fmt.Errorf("decoding cached metrics: %w", err)
	}
	snaps, report := NormalizeAll(days)
	return &LoadResult{
		Snapshots: snaps,
		Report:    report,
		FromCache: fromCache,
		FetchedAt: fetchedAt,
	}, nil
}

// LoadPremium returns the raw premium billing feed for one month, using the
// same cache-first policy as LoadMetrics.
func LoadPremium(ctx context.Context, fetcher PremiumFetcher, cache *store.Cache, org string, year, month int, ttl time.Duration) (*github.PremiumUsage, bool, error) {
	var stale []byte

	if cache != nil {
		payload, fetchedAt, ok, err := cache.GetPremium(org, year, month)
		if err == nil && ok {
			if time.Since(fetchedAt) < ttl || fetcher == nil {
				return decodePremium(payload)
			}
			stale = payload
		}
	}

	if fetcher == nil {
		return nil, false, fmt.Errorf("no cached premium usage for %s %d-%02d and no client configured", org, year, month)
	}

	usage, err := fetcher.FetchPremiumUsage(ctx, org, year, month)
	if err != nil {
		if stale != nil {
			return decodePremium(stale)
		}
		return nil, false, err
	}

	if payload, merr := json.Marshal(usage); merr == nil && cache != nil {
		_ = cache.SavePremium(org, year, month, payload)
	}

	return usage, false, nil
}

func decodePremium(payload []byte) (*github.PremiumUsage, bool, error) {
	var usage github.PremiumUsage
	if err := json.Unmarshal(payload, &usage); err != nil {
		return nil, false, fmt.Errorf("decoding cached premium usage: %w", err)
	}
	return &usage, true, nil
}

// FilterWindow keeps the most recent days calendar days of a window, judged
// from the latest date present rather than the wall clock, so an old cached
// feed still windows correctly. days <= 0 keeps everything.
func FilterWindow(snapshots []model.Snapshot, days int) []model.Snapshot {
	if days <= 0 || len(snapshots) == 0 {
		return snapshots
	}

	r, ok := ResolveDateRange(snapshots)
	if !ok {
		return snapshots
	}
	end, err := time.Parse("2006-01-02", r.End)
	if err != nil {
		return snapshots
	}
	cutoff := end.AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	out := make([]model.Snapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if s.Date >= cutoff {
			out = append(out, s)
		}
	}
	return out
}
