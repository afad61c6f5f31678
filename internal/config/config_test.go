package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.URL != "http://localhost:8000" {
		t.Errorf("Expected default server URL http://localhost:8000, got %s", cfg.Server.URL)
	}

	if cfg.Server.Timeout != 60*time.Second {
		t.Errorf("Expected default timeout 60s, got %v", cfg.Server.Timeout)
	}

	if cfg.Output.DefaultFormat != "tui" {
		t.Errorf("Expected default format tui, got %s", cfg.Output.DefaultFormat)
	}

	if cfg.Chart.TopColumns != 12 {
		t.Errorf("Expected 12 top columns, got %d", cfg.Chart.TopColumns)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "https URL",
			mutate:  func(c *Config) { c.Server.URL = "https://analysis.internal:8443" },
			wantErr: false,
		},
		{
			name:    "non-http scheme",
			mutate:  func(c *Config) { c.Server.URL = "ftp://example.com" },
			wantErr: true,
		},
		{
			name:    "empty URL",
			mutate:  func(c *Config) { c.Server.URL = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Server.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "pdf" },
			wantErr: true,
		},
		{
			name:    "invalid color mode",
			mutate:  func(c *Config) { c.Output.ColorMode = "sometimes" },
			wantErr: true,
		},
		{
			name:    "zero top columns",
			mutate:  func(c *Config) { c.Chart.TopColumns = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
