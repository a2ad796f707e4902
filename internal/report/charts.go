// Package report renders terminal charts and tables for the CLI.
package report

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stringsutil"
)

const (
	defaultWidth   = 80
	labelWidth     = 18
	minBarWidth    = 10
	sparklineMarks = "▁▂▃▄▅▆▇█"
)

// Row is one bar of a chart.
type Row struct {
	Label  string
	Value  float64
	Detail string
}

// terminalWidth returns the stdout width, or defaultWidth off-TTY.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// BarChart renders a horizontal bar chart. Bars scale to the widest value
// and adapt to the terminal width.
func BarChart(title string, rows []Row) string {
	return barChart(title, rows, terminalWidth())
}

func barChart(title string, rows []Row, width int) string {
	if len(rows) == 0 {
		return title + ": nothing to display\n"
	}

	maxValue := 0.0
	for _, r := range rows {
		if r.Value > maxValue {
			maxValue = r.Value
		}
	}

	maxBarWidth := width - labelWidth - 20
	if maxBarWidth < minBarWidth {
		maxBarWidth = minBarWidth
	}

	var chart strings.Builder
	chart.WriteString(title + "\n")
	for _, r := range rows {
		barLength := 0
		if maxValue > 0 {
			barLength = int(r.Value / maxValue * float64(maxBarWidth))
			if barLength == 0 && r.Value > 0 {
				barLength = 1
			}
		}
		bar := strings.Repeat("█", barLength)
		label := stringsutil.Truncate(r.Label, labelWidth-1)
		chart.WriteString(fmt.Sprintf("%-*s %s %s\n", labelWidth, label, bar, r.Detail))
	}
	return chart.String()
}

// Sparkline renders a win-rate curve as one line of block characters.
func Sparkline(series []stats.Point) string {
	if len(series) == 0 {
		return ""
	}

	marks := []rune(sparklineMarks)
	var line strings.Builder
	for _, p := range series {
		idx := int(p.Rate * float64(len(marks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(marks) {
			idx = len(marks) - 1
		}
		line.WriteRune(marks[idx])
	}
	return line.String()
}

// FormatSeries renders one streak run, e.g. "5 wins (G12..G16)".
func FormatSeries(s stats.Series) string {
	if s.Length == 0 {
		return "none"
	}
	if s.Length == 1 {
		noun := "win"
		if !s.Won {
			noun = "loss"
		}
		return fmt.Sprintf("1 %s (%s)", noun, s.StartGameID)
	}
	noun := "losses"
	if s.Won {
		noun = "wins"
	}
	return fmt.Sprintf("%d %s (%s..%s)", s.Length, noun, s.StartGameID, s.EndGameID)
}

// Percent formats a [0,1] rate for display.
func Percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}
