// Package config loads, normalizes, and validates sentsplit configuration.
//
// Settings come from a TOML file when one is found and fall back to
// repository defaults otherwise. Always obtain settings through Load so
// callers receive trimmed, lower-cased enums and clear validation errors.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jamesainslie/go-sentsplit/shield"
)

// DefaultOutputBase is the artifact name, without extension, written next to the input.
const DefaultOutputBase = "raw-dump-formatted"

// Segmenter contains sentence segmentation settings.
type Segmenter struct {
	// Abbreviations replaces the built-in list when non-empty.
	Abbreviations      []string `toml:"abbreviations"`
	ExtraAbbreviations []string `toml:"extra_abbreviations"`
	CompatFolding      bool     `toml:"compat_folding"`
}

// Output contains artifact settings.
type Output struct {
	Name   string `toml:"name"`
	Format string `toml:"format"`
}

// Logging contains logger settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the complete sentsplit configuration.
type Config struct {
	Segmenter Segmenter `toml:"segmenter"`
	Output    Output    `toml:"output"`
	Logging   Logging   `toml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Output: Output{
			Format: "text",
		},
		Logging: Logging{
			Level:  "info",
			Format: "auto",
		},
	}
}

// DefaultConfigPath returns the per-user configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/sentsplit/config.toml")
}

// Load locates, parses, and validates a configuration file. An explicit path
// must exist; with an empty path the per-user file is used when present.
// The returned string is the file that was read, or "" for defaults.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", fmt.Errorf("parse config %s: %w", resolved, err)
		}
	} else {
		resolved = ""
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolved, nil
}

// EffectiveAbbreviations returns the abbreviation set the segmenter should use.
func (c *Config) EffectiveAbbreviations() []string {
	base := shield.DefaultAbbreviations
	if len(c.Segmenter.Abbreviations) > 0 {
		base = c.Segmenter.Abbreviations
	}
	out := make([]string, 0, len(base)+len(c.Segmenter.ExtraAbbreviations))
	out = append(out, base...)
	return append(out, c.Segmenter.ExtraAbbreviations...)
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		// No home directory: run on defaults.
		return "", false, nil
	}
	info, err := os.Stat(defaultPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultPath, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return defaultPath, !info.IsDir(), nil
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
