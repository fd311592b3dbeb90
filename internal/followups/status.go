package followups

import (
	"time"

	"github.com/balkashynov/dialr/internal/models"
)

// DeriveStatus computes what a follow-up shows at time now.
// Completed is sticky; otherwise anything scheduled before now is overdue.
func DeriveStatus(f models.FollowUp, now time.Time) models.FollowUpStatus {
	if f.IsCompleted() {
		return models.StatusCompleted
	}
	if f.ScheduledDate.Before(now) {
		return models.StatusOverdue
	}
	return models.StatusPending
}
