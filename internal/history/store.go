package history

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/balkashynov/dialr/internal/models"
)

// Filter selects call records by direction
type Filter string

const (
	FilterAll      Filter = "all"
	FilterOutgoing Filter = "outgoing"
	FilterIncoming Filter = "incoming"
	FilterMissed   Filter = "missed"
)

// Filters returns the filter options in tab-bar order
func Filters() []Filter {
	return []Filter{FilterAll, FilterOutgoing, FilterIncoming, FilterMissed}
}

// Label is the text shown on the filter tab
func (f Filter) Label() string {
	switch f {
	case FilterOutgoing:
		return "Outgoing"
	case FilterIncoming:
		return "Incoming"
	case FilterMissed:
		return "Missed"
	default:
		return "All"
	}
}

// ParseFilter converts user input to a Filter. Empty input means all.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterOutgoing, FilterIncoming, FilterMissed:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter %q, use all, outgoing, incoming or missed: %w", s, models.ErrValidation)
	}
}

// Matches reports whether rec passes the direction filter
func (f Filter) Matches(rec models.CallRecord) bool {
	return f == FilterAll || string(f) == string(rec.Direction)
}

// Provider loads and saves the full list of call records in display order
type Provider interface {
	Load() ([]models.CallRecord, error)
	Save(records []models.CallRecord) error
}

// Store is an ordered collection of past calls
type Store struct {
	provider Provider
	records  []models.CallRecord
}

// NewStore creates an empty store backed by provider. Call Load to read stored records.
func NewStore(provider Provider) *Store {
	return &Store{provider: provider}
}

// Load replaces the in-memory records with the provider's
func (s *Store) Load() error {
	records, err := s.provider.Load()
	if err != nil {
		return fmt.Errorf("failed to load call history: %w", err)
	}
	s.records = records
	return nil
}

// Save writes the current records through the provider
func (s *Store) Save() error {
	if err := s.provider.Save(s.records); err != nil {
		return fmt.Errorf("failed to save call history: %w", err)
	}
	return nil
}

// Add validates rec, puts it at the top of the history and saves
func (s *Store) Add(rec models.CallRecord) (models.CallRecord, error) {
	rec.Number = strings.TrimSpace(rec.Number)
	if rec.Number == "" {
		return models.CallRecord{}, fmt.Errorf("call number is required: %w", models.ErrValidation)
	}
	if !rec.Direction.Valid() {
		return models.CallRecord{}, fmt.Errorf("unknown direction %q: %w", rec.Direction, models.ErrValidation)
	}
	if rec.DurationSeconds < 0 {
		return models.CallRecord{}, fmt.Errorf("duration must not be negative: %w", models.ErrValidation)
	}
	if rec.Timestamp.IsZero() {
		return models.CallRecord{}, fmt.Errorf("call timestamp is required: %w", models.ErrValidation)
	}
	if rec.Direction == models.DirectionMissed {
		rec.DurationSeconds = 0
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if _, ok := s.Get(rec.ID); ok {
		return models.CallRecord{}, fmt.Errorf("call %s already recorded: %w", rec.ID, models.ErrValidation)
	}

	prev := s.records
	s.records = append([]models.CallRecord{rec}, s.records...)
	if err := s.Save(); err != nil {
		s.records = prev
		return models.CallRecord{}, err
	}
	return rec, nil
}

// List returns records passing filter whose number, contact name or notes
// contain query (case-insensitive). Display order is kept.
func (s *Store) List(filter Filter, query string) []models.CallRecord {
	q := strings.ToLower(query)
	out := make([]models.CallRecord, 0, len(s.records))
	for _, rec := range s.records {
		if !filter.Matches(rec) {
			continue
		}
		if !matchesQuery(rec, q) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesQuery(rec models.CallRecord, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Number), q) ||
		strings.Contains(strings.ToLower(rec.ContactName), q) ||
		strings.Contains(strings.ToLower(rec.Notes), q)
}

// Count returns how many records pass filter, ignoring any search query
func (s *Store) Count(filter Filter) int {
	n := 0
	for _, rec := range s.records {
		if filter.Matches(rec) {
			n++
		}
	}
	return n
}

// Counts returns the badge count for every filter option
func (s *Store) Counts() map[Filter]int {
	counts := make(map[Filter]int, 4)
	for _, f := range Filters() {
		counts[f] = s.Count(f)
	}
	return counts
}

// Get looks up a record by ID
func (s *Store) Get(id string) (models.CallRecord, bool) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.CallRecord{}, false
}

func (s *Store) Len() int {
	return len(s.records)
}

// TotalDuration sums talk time over all records, in seconds
func (s *Store) TotalDuration() int {
	total := 0
	for _, rec := range s.records {
		total += rec.DurationSeconds
	}
	return total
}

// RecordingCount returns how many calls have a recording attached
func (s *Store) RecordingCount() int {
	n := 0
	for _, rec := range s.records {
		if rec.HasRecording {
			n++
		}
	}
	return n
}
