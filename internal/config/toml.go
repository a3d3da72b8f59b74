// Package config loads the TOML config file and resolves XDG paths.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileConfig mirrors the TOML config file. Nil fields were not set.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Storage  StorageConfig  `toml:"storage"`
}

// PracticeConfig holds the [practice] section.
type PracticeConfig struct {
	Category *string `toml:"category"`
	TickMs   *int    `toml:"tick-ms"`
}

// StorageConfig holds the [storage] section.
type StorageConfig struct {
	DB *string `toml:"db"`
}

// LoadConfig decodes the config at path. A missing file yields an empty
// config; unknown keys are an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return FileConfig{}, nil
	}
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg FileConfig
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return FileConfig{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if cfg.Practice.TickMs != nil && *cfg.Practice.TickMs <= 0 {
		return FileConfig{}, fmt.Errorf("practice.tick-ms must be positive")
	}
	return cfg, nil
}
