package followups

import (
	"fmt"
	"time"
)

const (
	clockLayout = "15:04"
	dateLayout  = "1/2/2006"
)

// FormatSchedule renders date relative to now's calendar day:
// "Today at 14:30", "Tomorrow at 09:00", otherwise "3/12/2026 at 09:00".
// Calendar days are compared in now's location.
func FormatSchedule(date, now time.Time) string {
	local := date.In(now.Location())
	clock := local.Format(clockLayout)

	switch {
	case sameDay(local, now):
		return fmt.Sprintf("Today at %s", clock)
	case sameDay(local, now.AddDate(0, 0, 1)):
		return fmt.Sprintf("Tomorrow at %s", clock)
	default:
		return fmt.Sprintf("%s at %s", local.Format(dateLayout), clock)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
