package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeExport(t *testing.T, dir, name, content string, mod time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("setting mtime on %s: %v", name, err)
	}
}

func TestParseFile_Array(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "week.json",
		`[{"date":"2025-06-01","total_active_users":10},{"date":"2025-06-02","total_active_users":12}]`,
		time.Now())

	res := ParseFile(DiscoveredFile{Path: filepath.Join(dir, "week.json")})
	if res.Err != nil {
		t.Fatalf("ParseFile: %v", res.Err)
	}
	if got, want := len(res.Days), 2; got != want {
		t.Fatalf("got %d days, want %d", got, want)
	}
	if res.Days[1].Date != "2025-06-02" {
		t.Errorf("got date %q, want 2025-06-02", res.Days[1].Date)
	}
}

func TestParseFile_SingleObject(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "day.json", `{"date":"2025-06-03","total_active_users":8}`, time.Now())

	res := ParseFile(DiscoveredFile{Path: filepath.Join(dir, "day.json")})
	if res.Err != nil {
		t.Fatalf("ParseFile: %v", res.Err)
	}
	if len(res.Days) != 1 || res.Days[0].TotalActiveUsers != 8 {
		t.Fatalf("got %+v, want one day with 8 active users", res.Days)
	}
}

func TestParseFile_Empty(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "empty.json", "  \n", time.Now())

	res := ParseFile(DiscoveredFile{Path: filepath.Join(dir, "empty.json")})
	if res.Err != nil {
		t.Fatalf("empty file should not error: %v", res.Err)
	}
	if len(res.Days) != 0 {
		t.Errorf("got %d days from empty file, want 0", len(res.Days))
	}
}

func TestLoadDir_NewestFileWins(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeExport(t, dir, "old.json",
		`[{"date":"2025-06-01","total_active_users":10}]`, base)
	writeExport(t, dir, "new.json",
		`[{"date":"2025-06-01","total_active_users":11},{"date":"2025-06-02","total_active_users":9}]`,
		base.Add(time.Minute))

	days, skipped, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	for _, d := range days {
		if d.Date == "2025-06-01" && d.TotalActiveUsers != 11 {
			t.Errorf("2025-06-01 active users = %d, want 11 (newest file)", d.TotalActiveUsers)
		}
	}
}

func TestLoadDir_MalformedFileSkipped(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "good.json", `[{"date":"2025-06-01"}]`, time.Now())
	writeExport(t, dir, "bad.json", `{not json`, time.Now())

	days, skipped, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(days) != 1 {
		t.Errorf("got %d days, want 1", len(days))
	}
}

func TestLoadDir_MissingDir(t *testing.T) {
	days, skipped, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if len(days) != 0 || skipped != 0 {
		t.Errorf("got %d days, %d skipped from missing dir", len(days), skipped)
	}
}
