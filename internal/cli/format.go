// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatCount formats a large count with human-readable suffixes.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M"
func FormatCount(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return FormatNumber(n)
	}
}

// FormatUSD formats a dollar amount with two decimals and a sign.
func FormatUSD(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatRate formats a whole-percent rate.
func FormatRate(pct int) string {
	return strconv.Itoa(pct) + "%"
}

// FormatRatio renders "accepted / total" pairs for rate columns.
func FormatRatio(num, den int64) string {
	return FormatNumber(num) + " / " + FormatNumber(den)
}

// FormatDayOfWeek returns a 3-letter day abbreviation for an ISO date label,
// or "???" if the label does not parse.
func FormatDayOfWeek(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "???"
	}
	return t.Format("Mon")
}
