package sentsplit

import (
	"log/slog"

	"github.com/jamesainslie/go-sentsplit/shield"
)

// Option configures a Segmenter.
type Option func(*config)

type config struct {
	abbreviations []string
	compatFolding bool
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		abbreviations: shield.DefaultAbbreviations,
		logger:        slog.Default(),
	}
}

// WithAbbreviations replaces the abbreviation set (default: shield.DefaultAbbreviations).
// An empty set disables abbreviation shielding.
func WithAbbreviations(abbrevs []string) Option {
	return func(c *config) {
		c.abbreviations = abbrevs
	}
}

// WithCompatFolding applies Unicode NFKC folding before segmentation
// (default: false).
func WithCompatFolding(enabled bool) Option {
	return func(c *config) {
		c.compatFolding = enabled
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
