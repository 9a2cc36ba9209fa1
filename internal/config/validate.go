package config

import (
	"fmt"
	"path/filepath"
	"slices"
)

// Formats lists the supported output formats.
var Formats = []string{"text", "jsonl", "protobuf"}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"auto", "text", "json"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %v", c.Output.Format, Formats)
	}
	if name := c.Output.Name; name != "" {
		if name != filepath.Base(name) || name == "." || name == ".." {
			return fmt.Errorf("output.name %q must be a bare file name", name)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of %v", c.Logging.Level, logLevels)
	}
	if !slices.Contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format %q is not one of %v", c.Logging.Format, logFormats)
	}
	return nil
}
