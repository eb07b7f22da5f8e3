package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// scanConfig carries everything the tree walk needs.
type scanConfig struct {
	root     string
	ext      string
	lookback int
	strict   bool
}

// fileReport is one scanned file's contribution to the coverage report.
type fileReport struct {
	path   string // slash-separated path relative to the root
	name   string // base name, what the report prints
	counts counts
}

var errNotUTF8 = errors.New("not valid UTF-8 text")

// scanTree walks cfg.root, analyzes every file whose name ends in cfg.ext,
// and returns per-file reports in sorted path order plus the running totals.
// Unreadable or non-UTF-8 files are skipped with a warning on warnw; with
// cfg.strict the first such fault aborts the walk instead.
func scanTree(cfg scanConfig, warnw io.Writer) ([]fileReport, counts, error) {
	info, err := os.Stat(cfg.root)
	if err != nil {
		return nil, counts{}, fmt.Errorf("root path %q: %w", cfg.root, err)
	}
	if !info.IsDir() {
		return nil, counts{}, fmt.Errorf("root path %q is not a directory", cfg.root)
	}

	var paths []string
	err = filepath.WalkDir(cfg.root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !strings.HasSuffix(entry.Name(), cfg.ext) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, counts{}, err
	}
	sort.Strings(paths)

	reports := make([]fileReport, 0, len(paths))
	var totals counts
	for _, path := range paths {
		text, readErr := readSource(path)
		if readErr != nil {
			if cfg.strict {
				return nil, counts{}, fmt.Errorf("read %s: %w", filepath.ToSlash(path), readErr)
			}
			fmt.Fprintf(warnw, "warning: skipping %s: %v\n", filepath.ToSlash(path), readErr)
			continue
		}
		c := analyzeSource(text, cfg.lookback)
		reports = append(reports, fileReport{
			path:   relativeTo(cfg.root, path),
			name:   filepath.Base(path),
			counts: c,
		})
		totals.add(c)
	}
	return reports, totals, nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errNotUTF8
	}
	return string(data), nil
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
