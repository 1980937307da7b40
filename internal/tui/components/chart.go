package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/copgauge/copgauge/internal/cli"
	"github.com/copgauge/copgauge/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkRamp = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a single-line unicode trend scaled to the series peak.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	var b strings.Builder
	b.Grow(len(values) * 3)
	for _, v := range values {
		i := int(math.Round(v / peak * float64(len(sparkRamp)-1)))
		if i < 0 {
			i = 0
		}
		if i > len(sparkRamp)-1 {
			i = len(sparkRamp) - 1
		}
		b.WriteRune(sparkRamp[i])
	}

	t := theme.Active
	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(b.String())
}

// BarSeries is one data series for BarChart.
type BarSeries struct {
	Values []float64
	Labels []string       // x-axis labels, one per value; optional
	Color  lipgloss.Color // bar color when Percent is false

	// Percent marks the values as whole-percent rates: the axis is pinned to
	// 0-100 and each bar is colored by its acceptance-rate band instead of
	// the series color.
	Percent bool
}

// BarChart renders a series as vertical bars with a y-axis. Series longer
// than the width allows are thinned by sampling; a chart area too small for
// bars degrades to a sparkline.
func BarChart(s BarSeries, width, height int) string {
	n := len(s.Values)
	if n == 0 {
		return ""
	}
	if width < 16 || height < 5 {
		return Sparkline(s.Values, s.Color)
	}

	t := theme.Active

	plotH := height - 2 // axis line + label row
	if plotH < 3 {
		plotH = 3
	}

	ceiling := 100.0
	if !s.Percent {
		peak := 0.0
		for _, v := range s.Values {
			if v > peak {
				peak = v
			}
		}
		ceiling = niceCeiling(peak)
	}

	midRow := (plotH + 1) / 2
	yLabels := map[int]string{
		plotH:  axisLabel(ceiling, s.Percent),
		midRow: axisLabel(ceiling*float64(midRow)/float64(plotH), s.Percent),
	}
	yW := 1
	for _, l := range yLabels {
		if len(l) > yW {
			yW = len(l)
		}
	}

	const barW, gap = 2, 1
	plotW := width - yW - 1
	maxBars := (plotW + gap) / (barW + gap)
	if maxBars < 2 {
		maxBars = 2
	}
	values, labels := s.Values, s.Labels
	if n > maxBars {
		values, labels = thinSeries(values, labels, maxBars)
		n = maxBars
	}

	// Bar heights in eighths of a row, so the top cell renders a partial
	// block instead of rounding a short day away.
	eighths := make([]int, n)
	for i, v := range values {
		e := int(math.Round(v / ceiling * float64(plotH*8)))
		if e > plotH*8 {
			e = plotH * 8
		}
		if e <= 0 && v > 0 {
			e = 1
		}
		if e < 0 {
			e = 0
		}
		eighths[i] = e
	}

	barStyles := make([]lipgloss.Style, n)
	for i, v := range values {
		c := s.Color
		if s.Percent {
			c = t.RateColor(int(math.Round(v)))
		}
		barStyles[i] = lipgloss.NewStyle().Foreground(c).Background(t.Surface)
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := plotH; row >= 1; row-- {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yW, yLabels[row])))
		b.WriteString(axisStyle.Render("│"))
		for i := range values {
			if i > 0 {
				b.WriteString(fillStyle.Render(strings.Repeat(" ", gap)))
			}
			full := eighths[i] / 8
			rem := eighths[i] % 8
			switch {
			case row <= full:
				b.WriteString(barStyles[i].Render(strings.Repeat("█", barW)))
			case row == full+1 && rem > 0:
				b.WriteString(barStyles[i].Render(strings.Repeat(string(sparkRamp[rem-1]), barW)))
			default:
				b.WriteString(fillStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	axisLen := n*barW + (n-1)*gap
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(fillStyle.Render(strings.Repeat(" ", yW+1)))
		b.WriteString(axisStyle.Render(xAxisRow(labels, axisLen, barW+gap)))
	}

	return b.String()
}

// thinSeries samples n evenly spaced points, keeping the first and last.
func thinSeries(values []float64, labels []string, n int) ([]float64, []string) {
	src := len(values)
	out := make([]float64, n)
	var outLabels []string
	if len(labels) == src {
		outLabels = make([]string, n)
	}
	for i := range out {
		j := i * (src - 1) / (n - 1)
		out[i] = values[j]
		if outLabels != nil {
			outLabels[i] = labels[j]
		}
	}
	return out, outLabels
}

// xAxisRow lays labels under their bars, thinning them so neighbors never
// collide.
func xAxisRow(labels []string, width, stride int) string {
	buf := []byte(strings.Repeat(" ", width))

	maxLen := 0
	for _, l := range labels {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	step := (maxLen + stride) / stride
	if step < 1 {
		step = 1
	}

	for i := 0; i < len(labels); i += step {
		pos := i * stride
		l := labels[i]
		if pos+len(l) > width {
			break
		}
		copy(buf[pos:], l)
	}
	return strings.TrimRight(string(buf), " ")
}

// niceCeiling rounds up to 1, 2, or 5 times a power of ten.
func niceCeiling(v float64) float64 {
	if v <= 0 {
		return 1
	}
	base := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5} {
		if v <= m*base {
			return m * base
		}
	}
	return 10 * base
}

func axisLabel(v float64, percent bool) string {
	if percent {
		return fmt.Sprintf("%.0f%%", v)
	}
	return cli.FormatCount(int64(math.Round(v)))
}
