package util

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration as seconds with one decimal, e.g. 1.5s.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
