package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.0", formatPercent(counts{}))
	assert.Equal(t, "33.3", formatPercent(counts{total: 3, documented: 1}))
	assert.Equal(t, "100.0", formatPercent(counts{total: 2, documented: 2}))
	assert.Equal(t, "66.7", formatPercent(counts{total: 3, documented: 2}))
}

func TestWriteReport(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	reports := []fileReport{
		{path: "Sources/A.swift", name: "A.swift", counts: counts{total: 4, documented: 3}},
		{path: "Sources/B.swift", name: "B.swift", counts: counts{total: 2}},
	}
	totals := counts{total: 6, documented: 3}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, reports, totals))
	assert.Equal(t, "A.swift: 3/4 (75.0%)\nB.swift: 0/2 (0.0%)\n\nOverall: 3/6 (50.0%)\n", buf.String())
}

func TestWriteReportEmpty(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, nil, counts{}))
	assert.Equal(t, "\nOverall: 0/0 (0.0%)\n", buf.String())
}

func TestCoverageColorBands(t *testing.T) {
	assert.Same(t, goodColor, coverageColor(100))
	assert.Same(t, goodColor, coverageColor(goodCoverage))
	assert.Same(t, fairColor, coverageColor(60))
	assert.Same(t, poorColor, coverageColor(10))
}
