package utils

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration renders an elapsed duration at a precision matching its
// magnitude.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1e6)
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.0fs", int(d.Minutes()), math.Mod(d.Seconds(), 60))
	default:
		hours := int(d.Hours())
		minutes := int(d.Minutes()) - 60*hours
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}
