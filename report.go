package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Coverage bands for report coloring.
const (
	goodCoverage = 80.0
	fairCoverage = 50.0
)

var (
	goodColor = color.New(color.FgGreen)
	fairColor = color.New(color.FgYellow)
	poorColor = color.New(color.FgRed)
)

// writeReport prints one line per scanned file followed by a blank line and
// the overall summary. Coloring wraps only the percentage text and vanishes
// when color is disabled, so report bytes stay stable across runs.
func writeReport(w io.Writer, reports []fileReport, totals counts) error {
	for _, r := range reports {
		if err := writeCoverageLine(w, r.name, r.counts); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeCoverageLine(w, "Overall", totals)
}

func writeCoverageLine(w io.Writer, label string, c counts) error {
	pct := percent(c)
	_, err := fmt.Fprintf(w, "%s: %d/%d (%s%%)\n", label, c.documented, c.total, coverageColor(pct).Sprint(formatPercent(c)))
	return err
}

// percent returns the coverage percentage, 0 for an empty file set.
func percent(c counts) float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.documented) / float64(c.total) * 100
}

// formatPercent renders the percentage with one decimal place, "0.0" when
// nothing was counted.
func formatPercent(c counts) string {
	return fmt.Sprintf("%.1f", percent(c))
}

func coverageColor(pct float64) *color.Color {
	switch {
	case pct >= goodCoverage:
		return goodColor
	case pct >= fairCoverage:
		return fairColor
	default:
		return poorColor
	}
}
