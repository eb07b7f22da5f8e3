package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigName is looked up in the working directory when --config is
// not given.
const defaultConfigName = "doccov.toml"

// fileConfig mirrors the recognized keys of doccov.toml. Zero values mean
// "not set"; flags always win over the file.
type fileConfig struct {
	Root     string `toml:"root"`
	Ext      string `toml:"ext"`
	Lookback int    `toml:"lookback"`
	Strict   bool   `toml:"strict"`
}

// loadConfig reads path, or the default config name when path is empty. A
// missing default file is fine; a missing explicit path is an error, as are
// unrecognized keys.
func loadConfig(path string) (fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigName
	}
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, fmt.Errorf("config %s: unrecognized key %q", path, undecoded[0].String())
	}
	if cfg.Lookback < 0 {
		return fileConfig{}, fmt.Errorf("config %s: lookback must not be negative", path)
	}
	return cfg, nil
}
