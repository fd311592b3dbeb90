package followups

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/dialr/internal/models"
)

// Provider loads and saves the full follow-up list in display order
type Provider interface {
	Load() ([]models.FollowUp, error)
	Save(items []models.FollowUp) error
}

// Input holds the fields needed to schedule a follow-up
type Input struct {
	ContactName    string
	PhoneNumber    string
	ScheduledDate  time.Time
	Notes          string
	Priority       models.Priority
	OriginalCallID string
}

// FromCall prepares an Input for calling back the contact of rec
func FromCall(rec models.CallRecord, at time.Time, notes string, priority models.Priority) Input {
	return Input{
		ContactName:    rec.DisplayName(),
		PhoneNumber:    rec.Number,
		ScheduledDate:  at,
		Notes:          notes,
		Priority:       priority,
		OriginalCallID: rec.ID,
	}
}

// View is a follow-up together with its status at a point in time
type View struct {
	models.FollowUp
	Derived models.FollowUpStatus
}

// Scheduler owns the follow-up list
type Scheduler struct {
	provider Provider
	items    []models.FollowUp
	now      func() time.Time
}

// NewScheduler creates an empty scheduler. A nil clock means time.Now.
func NewScheduler(provider Provider, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{provider: provider, now: now}
}

// Load replaces the in-memory list with the provider's.
// Only pending and completed are stored intents; anything else loads as pending.
func (s *Scheduler) Load() error {
	items, err := s.provider.Load()
	if err != nil {
		return fmt.Errorf("failed to load follow-ups: %w", err)
	}
	for i := range items {
		if items[i].Status != models.StatusCompleted {
			items[i].Status = models.StatusPending
		}
	}
	s.items = items
	return nil
}

func (s *Scheduler) Save() error {
	if err := s.provider.Save(s.items); err != nil {
		return fmt.Errorf("failed to save follow-ups: %w", err)
	}
	return nil
}

// Add schedules a new pending follow-up
func (s *Scheduler) Add(in Input) (models.FollowUp, error) {
	name := strings.TrimSpace(in.ContactName)
	if name == "" {
		return models.FollowUp{}, fmt.Errorf("contact name is required: %w", models.ErrValidation)
	}
	if in.ScheduledDate.IsZero() {
		return models.FollowUp{}, fmt.Errorf("scheduled date is required: %w", models.ErrValidation)
	}
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if _, err := models.ParsePriority(string(priority)); err != nil {
		return models.FollowUp{}, err
	}

	f := models.FollowUp{
		ID:             uuid.NewString(),
		ContactName:    name,
		PhoneNumber:    strings.TrimSpace(in.PhoneNumber),
		ScheduledDate:  in.ScheduledDate,
		Notes:          in.Notes,
		Priority:       priority,
		Status:         models.StatusPending,
		OriginalCallID: in.OriginalCallID,
	}

	prev := s.items
	s.items = append(append([]models.FollowUp(nil), s.items...), f)
	if err := s.Save(); err != nil {
		s.items = prev
		return models.FollowUp{}, err
	}
	return f, nil
}

// Complete marks a follow-up as done. Completion is terminal.
func (s *Scheduler) Complete(id string) (models.FollowUp, error) {
	i := s.index(id)
	if i < 0 {
		return models.FollowUp{}, fmt.Errorf("follow-up %s: %w", id, models.ErrNotFound)
	}
	if s.items[i].IsCompleted() {
		return s.items[i], nil
	}
	s.items[i].Status = models.StatusCompleted
	if err := s.Save(); err != nil {
		s.items[i].Status = models.StatusPending
		return models.FollowUp{}, err
	}
	return s.items[i], nil
}

// Remove deletes a follow-up
func (s *Scheduler) Remove(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("follow-up %s: %w", id, models.ErrNotFound)
	}
	prev := s.items
	s.items = append(append([]models.FollowUp(nil), s.items[:i]...), s.items[i+1:]...)
	if err := s.Save(); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// Get looks up a follow-up by ID
func (s *Scheduler) Get(id string) (models.FollowUp, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}
	return models.FollowUp{}, false
}

// List returns every follow-up with its status derived at now
func (s *Scheduler) List(now time.Time) []View {
	out := make([]View, 0, len(s.items))
	for _, f := range s.items {
		out = append(out, View{FollowUp: f, Derived: DeriveStatus(f, now)})
	}
	return out
}

// Current is List at the scheduler's clock
func (s *Scheduler) Current() []View {
	return s.List(s.now())
}

// PendingCount counts follow-ups that are pending at now
func (s *Scheduler) PendingCount(now time.Time) int {
	return s.countStatus(now, models.StatusPending)
}

// OverdueCount counts follow-ups that are overdue at now
func (s *Scheduler) OverdueCount(now time.Time) int {
	return s.countStatus(now, models.StatusOverdue)
}

func (s *Scheduler) Len() int {
	return len(s.items)
}

// Now returns the scheduler's clock reading
func (s *Scheduler) Now() time.Time {
	return s.now()
}

func (s *Scheduler) countStatus(now time.Time, status models.FollowUpStatus) int {
	n := 0
	for _, f := range s.items {
		if DeriveStatus(f, now) == status {
			n++
		}
	}
	return n
}

func (s *Scheduler) index(id string) int {
	for i, f := range s.items {
		if f.ID == id {
			return i
		}
	}
	return -1
}
