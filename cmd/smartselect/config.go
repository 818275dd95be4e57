package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const configFileName = ".smartselect.toml"

// demoConfig is the on-disk configuration for the demo program.
type demoConfig struct {
	Fruits []string     `toml:"fruits"`
	Tags   []string     `toml:"tags"`
	Remote remoteConfig `toml:"remote"`
	UI     uiConfig     `toml:"ui"`
}

type remoteConfig struct {
	URL        string `toml:"url"`
	Threshold  int    `toml:"threshold"`
	DebounceMS int    `toml:"debounce_ms"`
}

type uiConfig struct {
	MaxVisible int `toml:"max_visible"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		Fruits: []string{
			"Apple", "Banana", "Cherry", "Dragonfruit", "Elderberry",
			"Fig", "Grape", "Honeydew", "Kiwi", "Lemon", "Mango",
		},
		Tags: []string{
			"bug", "feature", "docs", "refactor", "performance",
			"security", "good first issue", "help wanted",
		},
		Remote: remoteConfig{
			URL:        "https://api.github.com/search/users?q=%s&per_page=10",
			Threshold:  2,
			DebounceMS: 300,
		},
		UI: uiConfig{MaxVisible: 6},
	}
}

// loadOrCreateConfig reads .smartselect.toml from dir, writing the default
// file when none exists. A malformed file falls back to defaults rather than
// aborting the program.
func loadOrCreateConfig(dir string) demoConfig {
	path := filepath.Join(dir, configFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := defaultConfig()
			if out, err := toml.Marshal(cfg); err == nil {
				if err := os.WriteFile(path, out, 0644); err != nil {
					log.Printf("Could not write default config: %v", err)
				}
			}
			return cfg
		}
		log.Printf("Could not read config: %v", err)
		return defaultConfig()
	}

	var cfg demoConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Malformed config %s: %v (using defaults)", path, err)
		return defaultConfig()
	}

	// Fill gaps so a hand-trimmed file still yields a usable demo.
	def := defaultConfig()
	if len(cfg.Fruits) == 0 {
		cfg.Fruits = def.Fruits
	}
	if len(cfg.Tags) == 0 {
		cfg.Tags = def.Tags
	}
	if cfg.Remote.URL == "" {
		cfg.Remote = def.Remote
	}
	if cfg.UI.MaxVisible <= 0 {
		cfg.UI.MaxVisible = def.UI.MaxVisible
	}
	return cfg
}
