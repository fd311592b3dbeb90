package history

import (
	"fmt"
	"time"
)

// DateLayout renders dates older than a day (month/day/year, no padding)
const DateLayout = "1/2/2006"

// FormatDuration renders seconds as m:ss, e.g. 245 -> "4:05"
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatRelativeTime renders ts relative to now: "12m ago" within the hour,
// "3h ago" within the day, otherwise the date.
func FormatRelativeTime(ts, now time.Time) string {
	diff := now.Sub(ts)
	if diff < 0 {
		diff = 0
	}
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	default:
		return ts.Format(DateLayout)
	}
}

// FormatTalkTime renders a total like "45h 23m" for the profile stats
func FormatTalkTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	d := time.Duration(seconds) * time.Second
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
