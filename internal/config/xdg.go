package config

import (
	"os"
	"path/filepath"
)

const appName = "typesnip"

// xdgHome resolves an XDG base directory from env, falling back to a path
// under the user's home directory.
func xdgHome(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// XDGConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string {
	return xdgHome("XDG_CONFIG_HOME", ".config")
}

// XDGDataHome returns $XDG_DATA_HOME or ~/.local/share.
func XDGDataHome() string {
	return xdgHome("XDG_DATA_HOME", ".local", "share")
}

// DefaultDBPath is where user snippets are stored.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, "snippets.db")
}

// DefaultConfigPath is the TOML config location.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
