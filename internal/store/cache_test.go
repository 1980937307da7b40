package store

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMetricsRoundTrip(t *testing.T) {
	c := openTestCache(t)

	payload := []byte(`[{"date":"2025-03-01"}]`)
	if err := c.SaveMetrics("acme", payload); err != nil {
		t.Fatalf("SaveMetrics: %v", err)
	}

	got, fetchedAt, ok, err := c.GetMetrics("acme")
	if err != nil {
		t.Fatalf("GetMetrics: %v", err)
	}
	if !ok {
		t.Fatal("GetMetrics ok = false, want hit")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = %s, want %s", got, payload)
	}
	if time.Since(fetchedAt) > time.Minute {
		t.Errorf("fetchedAt = %v, want recent", fetchedAt)
	}
}

func TestMetricsMiss(t *testing.T) {
	c := openTestCache(t)

	_, _, ok, err := c.GetMetrics("nobody")
	if err != nil {
		t.Fatalf("GetMetrics: %v", err)
	}
	if ok {
		t.Error("ok = true for missing org, want miss")
	}
}

func TestSaveMetricsOverwrites(t *testing.T) {
	c := openTestCache(t)

	if err := c.SaveMetrics("acme", []byte("old")); err != nil {
		t.Fatalf("SaveMetrics: %v", err)
	}
	if err := c.SaveMetrics("acme", []byte("new")); err != nil {
		t.Fatalf("SaveMetrics (second): %v", err)
	}

	got, _, ok, err := c.GetMetrics("acme")
	if err != nil || !ok {
		t.Fatalf("GetMetrics: ok=%v err=%v", ok, err)
	}
	if string(got) != "new" {
		t.Errorf("payload = %s, want new", got)
	}
}

func TestPremiumKeyedByPeriod(t *testing.T) {
	c := openTestCache(t)

	if err := c.SavePremium("acme", 2025, 3, []byte("march")); err != nil {
		t.Fatalf("SavePremium: %v", err)
	}
	if err := c.SavePremium("acme", 2025, 4, []byte("april")); err != nil {
		t.Fatalf("SavePremium: %v", err)
	}

	got, _, ok, err := c.GetPremium("acme", 2025, 3)
	if err != nil || !ok {
		t.Fatalf("GetPremium: ok=%v err=%v", ok, err)
	}
	if string(got) != "march" {
		t.Errorf("payload = %s, want march", got)
	}

	if _, _, ok, _ := c.GetPremium("acme", 2025, 5); ok {
		t.Error("ok = true for unsaved month, want miss")
	}
}

func TestClear(t *testing.T) {
	c := openTestCache(t)

	if err := c.SaveMetrics("acme", []byte("x")); err != nil {
		t.Fatalf("SaveMetrics: %v", err)
	}
	if err := c.SavePremium("acme", 2025, 3, []byte("y")); err != nil {
		t.Fatalf("SavePremium: %v", err)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if _, _, ok, _ := c.GetMetrics("acme"); ok {
		t.Error("metrics survived Clear")
	}
	if _, _, ok, _ := c.GetPremium("acme", 2025, 3); ok {
		t.Error("premium payload survived Clear")
	}
}
