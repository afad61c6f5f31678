package config

import (
	"fmt"
	"net/url"
	"slices"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Output OutputConfig `yaml:"output"`
	Chart  ChartConfig  `yaml:"chart"`
}

// ServerConfig configures the analysis service connection
type ServerConfig struct {
	URL     string        `yaml:"url"`     // analysis service base URL
	Timeout time.Duration `yaml:"timeout"` // request timeout
}

// OutputConfig configures output rendering
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"` // tui|cli|html
	ColorMode     string `yaml:"color_mode"`     // auto|always|never
}

// ChartConfig configures the missing-values chart
type ChartConfig struct {
	TopColumns int `yaml:"top_columns"` // ranking cap for the missing-values chart
}

var validFormats = []string{"tui", "cli", "html"}
var validColorModes = []string{"auto", "always", "never"}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "http://localhost:8000",
			Timeout: 60 * time.Second,
		},
		Output: OutputConfig{
			DefaultFormat: "tui",
			ColorMode:     "auto",
		},
		Chart: ChartConfig{
			TopColumns: 12,
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.Server.URL)
	if err != nil {
		return fmt.Errorf("invalid server URL %q: %w", c.Server.URL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid server URL %q: scheme must be http or https", c.Server.URL)
	}

	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server timeout must be greater than 0")
	}

	if !slices.Contains(validFormats, c.Output.DefaultFormat) {
		return fmt.Errorf("invalid output format: %s (must be one of: tui, cli, html)", c.Output.DefaultFormat)
	}

	if !slices.Contains(validColorModes, c.Output.ColorMode) {
		return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
	}

	if c.Chart.TopColumns <= 0 {
		return fmt.Errorf("chart top_columns must be greater than 0")
	}

	return nil
}
