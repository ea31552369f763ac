package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deckbench/deckbench/internal/deck"
)

// Config holds the server settings read at startup.
type Config struct {
	ListenAddr  string      `yaml:"listen_addr"`
	CatalogPath string      `yaml:"catalog_path"`
	ExportDir   string      `yaml:"export_dir"`
	Limits      LimitConfig `yaml:"limits"`
}

// LimitConfig mirrors deck.Limits in the config file.
type LimitConfig struct {
	MaxDeckSize int `yaml:"max_deck_size"`
	CopyLimit   int `yaml:"copy_limit"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		ListenAddr:  ":8080",
		CatalogPath: "data/cards.json",
		ExportDir:   "exports",
		Limits: LimitConfig{
			MaxDeckSize: deck.DefaultMaxDeckSize,
			CopyLimit:   deck.DefaultCopyLimit,
		},
	}
}

// Load reads a YAML config file over the defaults, so missing keys keep
// their stock values. Limits must be positive.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config YAML: %w", err)
	}
	if cfg.Limits.MaxDeckSize < 1 {
		return cfg, fmt.Errorf("config %s: max_deck_size %d is not positive", path, cfg.Limits.MaxDeckSize)
	}
	if cfg.Limits.CopyLimit < 1 {
		return cfg, fmt.Errorf("config %s: copy_limit %d is not positive", path, cfg.Limits.CopyLimit)
	}
	return cfg, nil
}

// DeckLimits converts the configured limits for the deck package.
func (c Config) DeckLimits() deck.Limits {
	return deck.Limits{
		MaxDeckSize: c.Limits.MaxDeckSize,
		CopyLimit:   c.Limits.CopyLimit,
	}
}
