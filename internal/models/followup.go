package models

import (
	"fmt"
	"strings"
	"time"
)

// Priority of a follow-up
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority accepts low/medium/high, med, or 1/2/3. Empty input means medium.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityMedium, nil
	case "low", "1":
		return PriorityLow, nil
	case "medium", "med", "2":
		return PriorityMedium, nil
	case "high", "3":
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("invalid priority %q, use low, medium or high: %w", s, ErrValidation)
	}
}

// FollowUpStatus is what the follow-ups tab shows for an entry
type FollowUpStatus string

const (
	StatusPending   FollowUpStatus = "pending"
	StatusCompleted FollowUpStatus = "completed"
	// StatusOverdue is derived from the schedule and never stored
	StatusOverdue FollowUpStatus = "overdue"
)

// FollowUp is a scheduled reminder to call someone back.
// Status holds stored intent only: pending or completed.
type FollowUp struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	ContactName    string         `gorm:"not null" json:"contact_name"`
	PhoneNumber    string         `json:"phone_number"`
	ScheduledDate  time.Time      `gorm:"not null;index" json:"scheduled_date"`
	Notes          string         `json:"notes,omitempty"`
	Priority       Priority       `gorm:"default:medium" json:"priority"`
	Status         FollowUpStatus `gorm:"default:pending" json:"status"`
	OriginalCallID string         `json:"original_call_id,omitempty"`

	Position int `gorm:"index" json:"-"`
}

// IsCompleted reports whether the follow-up was explicitly completed
func (f FollowUp) IsCompleted() bool {
	return f.Status == StatusCompleted
}
