package main

import (
	"regexp"
	"strings"
)

// docMarker is the substring that marks a documentation comment line.
const docMarker = "///"

// defaultLookback is how many lines above a declaration are searched for
// the documentation marker.
const defaultLookback = 10

// declPattern spots function-like declarations with a line heuristic: an
// optional access modifier, an optional static, then `func <name>` or an
// initializer. It is not a parser; multi-line signatures and nested
// declarations are out of scope.
var declPattern = regexp.MustCompile(`^\s*(?:(?:public|private|internal|fileprivate)\s+)?(?:static\s+)?(?:func\s+\w+|init\s*\()`)

// counts is a per-file or aggregate coverage tally.
type counts struct {
	total      int
	documented int
}

func (c *counts) add(other counts) {
	c.total += other.total
	c.documented += other.documented
}

// analyzeSource scans one file's text for declarations and reports how many
// have the documentation marker within lookback lines above them. Windows of
// nearby declarations overlap, so one comment may count for several
// declarations; a declaration on the first line has an empty window and is
// never documented.
func analyzeSource(text string, lookback int) counts {
	var result counts
	if text == "" {
		return result
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !declPattern.MatchString(line) {
			continue
		}
		result.total++
		start := i - lookback
		if start < 0 {
			start = 0
		}
		for _, prev := range lines[start:i] {
			if strings.Contains(prev, docMarker) {
				result.documented++
				break
			}
		}
	}
	return result
}
