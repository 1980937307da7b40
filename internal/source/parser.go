package source

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/copgauge/copgauge/internal/github"
)

// ParseResult holds the outcome of parsing one export file.
type ParseResult struct {
	Days []github.MetricsDay
	Err  error // non-nil when the file could not be read or decoded
}

// ParseFile decodes one metrics export. Both a bare JSON array of day records
// and a single day object are accepted, matching what `gh api` emits with and
// without --paginate.
func ParseFile(df DiscoveredFile) ParseResult {
	data, err := os.ReadFile(df.Path)
	if err != nil {
		return ParseResult{Err: err}
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ParseResult{}
	}

	if data[0] == '[' {
		var days []github.MetricsDay
		if err := json.Unmarshal(data, &days); err != nil {
			return ParseResult{Err: err}
		}
		return ParseResult{Days: days}
	}

	var day github.MetricsDay
	if err := json.Unmarshal(data, &day); err != nil {
		return ParseResult{Err: err}
	}
	return ParseResult{Days: []github.MetricsDay{day}}
}

// LoadDir reads every export under dir and merges the day records, keyed by
// date with the newest file winning. Malformed files are skipped and counted,
// never fatal.
func LoadDir(dir string) ([]github.MetricsDay, int, error) {
	files, err := ScanDir(dir)
	if err != nil {
		return nil, 0, err
	}

	byDate := make(map[string]github.MetricsDay)
	var order []string
	var dateless []github.MetricsDay
	skipped := 0

	for _, df := range files {
		res := ParseFile(df)
		if res.Err != nil {
			skipped++
			continue
		}
		for _, day := range res.Days {
			// Dateless records are kept as-is; the normalizer counts them.
			if day.Date == "" {
				dateless = append(dateless, day)
				continue
			}
			if _, seen := byDate[day.Date]; !seen {
				order = append(order, day.Date)
			}
			byDate[day.Date] = day
		}
	}

	days := make([]github.MetricsDay, 0, len(order)+len(dateless))
	for _, date := range order {
		days = append(days, byDate[date])
	}
	days = append(days, dateless...)
	return days, skipped, nil
}
