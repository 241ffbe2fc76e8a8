package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idilsaglam/reminders/internal/store/jsonstore"
	"github.com/idilsaglam/reminders/internal/timeparse"
)

type Config struct {
	// DataFile is the reminder export; relative paths resolve against
	// the working directory.
	DataFile string `json:"data_file"`
	Theme    string `json:"theme"`
	Timezone string `json:"timezone"`
	Color    string `json:"color"`
}

func Default() *Config {
	return &Config{
		DataFile: jsonstore.DefaultFileName,
		Theme:    "classic",
		Timezone: timeparse.DefaultZone,
		Color:    "auto",
	}
}

// Load reads the config at path. A missing file yields Default();
// the file is never created.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path is controlled by the app config location
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	normalize(&cfg)
	return &cfg, nil
}

func normalize(cfg *Config) {
	def := Default()
	cfg.DataFile = strings.TrimSpace(cfg.DataFile)
	if cfg.DataFile == "" {
		cfg.DataFile = def.DataFile
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	switch cfg.Theme {
	case "classic", "neon", "mono":
	default:
		cfg.Theme = def.Theme
	}
	if strings.TrimSpace(cfg.Timezone) == "" {
		cfg.Timezone = def.Timezone
	}
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		cfg.Color = def.Color
	}
}
