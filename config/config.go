// Package config handles server configuration loading and defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultAddr   = ":7789"
	DefaultDBPath = "./todos.db"
)

// Config holds the server configuration.
type Config struct {
	Addr   string `toml:"addr"`
	DBPath string `toml:"db_path"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Addr:   DefaultAddr,
		DBPath: DefaultDBPath,
	}
}

// Load reads the TOML file at path. A missing file is not an error; it
// yields the defaults. Fields left empty in the file fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}

	return cfg, nil
}
