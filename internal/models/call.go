package models

import (
	"fmt"
	"strings"
	"time"
)

// Direction tells who started a call and whether it connected
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
	DirectionMissed   Direction = "missed"
)

// ParseDirection converts user input to a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "incoming", "in":
		return DirectionIncoming, nil
	case "outgoing", "out":
		return DirectionOutgoing, nil
	case "missed":
		return DirectionMissed, nil
	default:
		return "", fmt.Errorf("unknown call direction %q: %w", s, ErrValidation)
	}
}

// Valid reports whether d is one of the known directions
func (d Direction) Valid() bool {
	switch d {
	case DirectionIncoming, DirectionOutgoing, DirectionMissed:
		return true
	}
	return false
}

// CallRecord is a past call shown in the history tab.
// Records are never edited once stored.
type CallRecord struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Number          string    `gorm:"not null" json:"number"`
	ContactName     string    `json:"contact_name,omitempty"`
	Direction       Direction `gorm:"not null;index" json:"direction"`
	Timestamp       time.Time `gorm:"not null" json:"timestamp"`
	DurationSeconds int       `gorm:"default:0" json:"duration_seconds"`
	Notes           string    `json:"notes,omitempty"`
	HasRecording    bool      `gorm:"default:false" json:"has_recording"`

	// Position keeps display order across saves
	Position int `gorm:"index" json:"-"`

	// Relationships
	Tags []Tag `gorm:"many2many:call_tags;" json:"tags"`
}

// Tag is a label attached to call records
type Tag struct {
	Name string `gorm:"primaryKey" json:"name"`
}

// TagNames returns the record's tag names in stored order
func (c CallRecord) TagNames() []string {
	names := make([]string, 0, len(c.Tags))
	for _, tag := range c.Tags {
		names = append(names, tag.Name)
	}
	return names
}

// DisplayName is the contact name, or the number for unknown callers
func (c CallRecord) DisplayName() string {
	if c.ContactName != "" {
		return c.ContactName
	}
	return c.Number
}

// TagsFromNames builds tags from names, skipping blanks and duplicates
func TagsFromNames(names []string) []Tag {
	seen := make(map[string]bool, len(names))
	var tags []Tag
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		tags = append(tags, Tag{Name: name})
	}
	return tags
}
