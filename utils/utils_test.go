package utils

import (
	"testing"
	"time"
)

func TestGetNextEnumWraps(t *testing.T) {
	if got := GetNextEnum(2, 2); got != 0 {
		t.Errorf("expected wrap to 0, got %d", got)
	}
	if got := GetNextEnum(0, 2); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestGetPrevEnumWraps(t *testing.T) {
	if got := GetPrevEnum(0, 2); got != 2 {
		t.Errorf("expected wrap to 2, got %d", got)
	}
	if got := GetPrevEnum(2, 2); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{240 * time.Millisecond, "240.0ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m 30s"},
		{2*time.Hour + 5*time.Minute, "2h 5m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
