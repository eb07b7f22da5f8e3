package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// defaultExt is the file extension scanned when neither flag nor config file
// says otherwise.
const defaultExt = ".swift"

type options struct {
	ext        string
	lookback   int
	strict     bool
	configPath string
	noColor    bool
}

type cliApp struct {
	stdout io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

// execute resolves configuration precedence (built-in defaults, config file,
// flags, positional root) and runs one scan. changed reports whether a flag
// was set explicitly on the command line.
func (app *cliApp) execute(args []string, errw io.Writer, changed func(string) bool) error {
	fileCfg, err := loadConfig(app.opts.configPath)
	if err != nil {
		return err
	}

	cfg := scanConfig{
		root:     ".",
		ext:      defaultExt,
		lookback: defaultLookback,
	}
	if fileCfg.Root != "" {
		cfg.root = fileCfg.Root
	}
	if fileCfg.Ext != "" {
		cfg.ext = fileCfg.Ext
	}
	if fileCfg.Lookback > 0 {
		cfg.lookback = fileCfg.Lookback
	}
	cfg.strict = fileCfg.Strict

	if len(args) == 1 {
		cfg.root = args[0]
	}
	if changed("ext") {
		cfg.ext = app.opts.ext
	}
	if changed("lookback") {
		cfg.lookback = app.opts.lookback
	}
	if changed("strict") {
		cfg.strict = app.opts.strict
	}
	if app.opts.noColor {
		color.NoColor = true
	}

	if cfg.ext == "" {
		return errors.New("extension must not be empty")
	}
	if !strings.HasPrefix(cfg.ext, ".") {
		cfg.ext = "." + cfg.ext
	}
	if cfg.lookback < 0 {
		return fmt.Errorf("lookback must not be negative, got %d", cfg.lookback)
	}

	reports, totals, err := scanTree(cfg, errw)
	if err != nil {
		return err
	}
	return writeReport(app.stdout, reports, totals)
}
