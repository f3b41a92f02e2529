package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Yugloocamai/gulp-typescript/internal/settings"
)

// loadSettingsFile reads a TOML settings file into the raw settings mapping
// the pipeline accepts. Keys mirror the programmatic settings one-to-one.
func loadSettingsFile(path string) (settings.Settings, error) {
	if path == "" {
		return nil, nil
	}
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return settings.Settings(raw), nil
}
