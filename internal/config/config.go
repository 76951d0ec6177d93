// Package config loads optional per-project compiler settings from a
// pvmc.toml file, falling back to sane defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the handful of knobs the compile command consults.
type Config struct {
	Output struct {
		Filename string `toml:"filename"`
		Color    bool   `toml:"color"`
	} `toml:"output"`

	Diagnostics struct {
		StopOnFirstError bool `toml:"stop_on_first_error"`
	} `toml:"diagnostics"`
}

// Default returns the built-in configuration used when no pvmc.toml is
// present.
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Filename = "cod_vm.txt"
	cfg.Output.Color = true
	cfg.Diagnostics.StopOnFirstError = true
	return cfg
}

// Load reads path if it exists, overlaying its values on Default(); a
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
