package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.csvdash.yml",              // Project-specific config (highest priority)
	"~/.config/csvdash/config.yml", // User config
}

// Load reads configuration from the first available source and applies
// environment overrides. A non-empty customPath restricts loading to that
// file alone.
func Load(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		for _, path := range ConfigPaths {
			expanded := expandPath(path)
			if fileExists(expanded) {
				if err := loadFromFile(config, expanded); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", expanded, err)
				}
				break
			}
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadFromFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

func applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"CSVDASH_SERVER":  func(v string) error { config.Server.URL = v; return nil },
		"CSVDASH_TIMEOUT": func(v string) error { return parseDuration(v, &config.Server.Timeout) },
		"CSVDASH_OUTPUT":  func(v string) error { config.Output.DefaultFormat = v; return nil },
		"CSVDASH_COLOR":   func(v string) error { config.Output.ColorMode = v; return nil },
		"CSVDASH_CHART_TOP_COLUMNS": func(v string) error {
			return parseInt(v, &config.Chart.TopColumns)
		},
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

func parseDuration(value string, target *time.Duration) error {
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}

func parseInt(value string, target *int) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
