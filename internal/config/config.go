// Package config loads the driver-level settings that sit outside the
// interpreter core: REPL prompt, color, and log verbosity. None of it
// affects language semantics.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Settings is golox's optional TOML config, grounded on
// valVk-resterm/internal/config/settings.go's load-with-fallback shape but
// trimmed to the single TOML format and the three fields the driver needs.
type Settings struct {
	Prompt   string `toml:"prompt"`
	Color    bool   `toml:"color"`
	LogLevel string `toml:"log_level"`
}

// Default returns the settings used when no config file is found.
func Default() Settings {
	return Settings{
		Prompt:   "> ",
		Color:    true,
		LogLevel: "warn",
	}
}

// Load reads path if non-empty, otherwise $GOLOX_CONFIG, otherwise
// ./.golox.toml. A missing file is not an error — Default() is returned
// unchanged. A present-but-malformed file is.
func Load(path string) (Settings, error) {
	settings := Default()

	if path == "" {
		path = os.Getenv("GOLOX_CONFIG")
	}
	if path == "" {
		path = ".golox.toml"
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return settings, nil
}
