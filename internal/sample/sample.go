// Package sample holds the demo call history and follow-ups.
// Timestamps are relative to the given time so the data always looks recent.
package sample

import (
	"time"

	"github.com/balkashynov/dialr/internal/models"
)

// Calls returns the demo call history, newest first
func Calls(now time.Time) []models.CallRecord {
	return []models.CallRecord{
		{
			ID:              "call_1",
			Number:          "+1234567890",
			ContactName:     "John Smith",
			Direction:       models.DirectionOutgoing,
			Timestamp:       now.Add(-30 * time.Minute),
			DurationSeconds: 245,
			Notes:           "Discussed project requirements",
			Tags:            models.TagsFromNames([]string{"Lead", "Important"}),
			HasRecording:    true,
		},
		{
			ID:              "call_2",
			Number:          "+0987654321",
			ContactName:     "Sarah Johnson",
			Direction:       models.DirectionIncoming,
			Timestamp:       now.Add(-2 * time.Hour),
			DurationSeconds: 180,
			Notes:           "Follow-up call scheduled",
			Tags:            models.TagsFromNames([]string{"Support"}),
			HasRecording:    true,
		},
		{
			ID:        "call_3",
			Number:    "+1122334455",
			Direction: models.DirectionMissed,
			Timestamp: now.Add(-4 * time.Hour),
			Tags:      models.TagsFromNames([]string{"Unknown"}),
		},
		{
			ID:              "call_4",
			Number:          "+5566778899",
			ContactName:     "Mike Wilson",
			Direction:       models.DirectionOutgoing,
			Timestamp:       now.Add(-24 * time.Hour),
			DurationSeconds: 420,
			Notes:           "Contract discussion",
			Tags:            models.TagsFromNames([]string{"Client", "Contract"}),
			HasRecording:    true,
		},
	}
}

// FollowUps returns the demo follow-ups, each linked to a demo call
func FollowUps(now time.Time) []models.FollowUp {
	return []models.FollowUp{
		{
			ID:             "followup_1",
			ContactName:    "John Smith",
			PhoneNumber:    "+1234567890",
			ScheduledDate:  now.Add(2 * time.Hour),
			Notes:          "Follow up on project proposal discussion",
			Priority:       models.PriorityHigh,
			Status:         models.StatusPending,
			OriginalCallID: "call_1",
		},
		{
			ID:             "followup_2",
			ContactName:    "Sarah Johnson",
			PhoneNumber:    "+0987654321",
			ScheduledDate:  now.Add(-time.Hour),
			Notes:          "Discuss contract terms and pricing",
			Priority:       models.PriorityMedium,
			Status:         models.StatusPending,
			OriginalCallID: "call_2",
		},
		{
			ID:             "followup_3",
			ContactName:    "Mike Wilson",
			PhoneNumber:    "+5566778899",
			ScheduledDate:  now.Add(24 * time.Hour),
			Notes:          "Check on delivery status",
			Priority:       models.PriorityLow,
			Status:         models.StatusPending,
			OriginalCallID: "call_4",
		},
	}
}
