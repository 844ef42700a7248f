package utils

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as HH:MM:SS. Hours are not capped at 24,
// a 25-hour entry reads 25:00:00.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
