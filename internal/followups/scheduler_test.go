package followups

import (
	"errors"
	"testing"
	"time"

	"github.com/balkashynov/dialr/internal/models"
	"github.com/balkashynov/dialr/internal/sample"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newSampleScheduler(t *testing.T) (*Scheduler, *MemoryProvider) {
	t.Helper()
	p := NewMemoryProvider(sample.FollowUps(testNow)...)
	s := NewScheduler(p, func() time.Time { return testNow })
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, p
}

func TestDeriveStatus(t *testing.T) {
	f := models.FollowUp{ScheduledDate: testNow.Add(-time.Hour), Status: models.StatusPending}
	if got := DeriveStatus(f, testNow); got != models.StatusOverdue {
		t.Fatalf("expected overdue, got %s", got)
	}
	f.ScheduledDate = testNow.Add(time.Hour)
	if got := DeriveStatus(f, testNow); got != models.StatusPending {
		t.Fatalf("expected pending, got %s", got)
	}
	f.ScheduledDate = testNow
	if got := DeriveStatus(f, testNow); got != models.StatusPending {
		t.Fatalf("scheduled exactly now is not overdue yet, got %s", got)
	}
}

func TestDeriveStatusCompletedIsSticky(t *testing.T) {
	f := models.FollowUp{ScheduledDate: testNow, Status: models.StatusCompleted}
	for _, now := range []time.Time{testNow.Add(-48 * time.Hour), testNow, testNow.Add(365 * 24 * time.Hour)} {
		if got := DeriveStatus(f, now); got != models.StatusCompleted {
			t.Fatalf("completed must stay completed at %v, got %s", now, got)
		}
	}
}

func TestStatusFollowsClock(t *testing.T) {
	s, _ := newSampleScheduler(t)
	if s.PendingCount(testNow) != 2 || s.OverdueCount(testNow) != 1 {
		t.Fatalf("expected 2 pending 1 overdue, got %d/%d", s.PendingCount(testNow), s.OverdueCount(testNow))
	}
	later := testNow.Add(3 * time.Hour)
	if s.PendingCount(later) != 1 || s.OverdueCount(later) != 2 {
		t.Fatalf("expected 1 pending 2 overdue later, got %d/%d", s.PendingCount(later), s.OverdueCount(later))
	}
}

func TestCompleteOverdueFollowUp(t *testing.T) {
	s, p := newSampleScheduler(t)
	f, err := s.Complete("followup_2")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if f.Status != models.StatusCompleted {
		t.Fatalf("expected stored status completed")
	}
	if got := DeriveStatus(f, testNow.Add(100*time.Hour)); got != models.StatusCompleted {
		t.Fatalf("expected completed regardless of now, got %s", got)
	}
	if s.OverdueCount(testNow) != 0 || s.PendingCount(testNow) != 2 {
		t.Fatalf("completed should be excluded from both counts")
	}
	if p.Saves != 1 || p.Items[1].Status != models.StatusCompleted {
		t.Fatalf("expected completion persisted")
	}
}

func TestCompleteAndRemoveUnknownID(t *testing.T) {
	s, p := newSampleScheduler(t)
	if _, err := s.Complete("nope"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := s.Remove("nope"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if s.Len() != 3 || p.Saves != 0 {
		t.Fatalf("scheduler must be unchanged")
	}
}

func TestRemove(t *testing.T) {
	s, p := newSampleScheduler(t)
	if err := s.Remove("followup_1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.Get("followup_1"); ok {
		t.Fatalf("follow-up should be gone")
	}
	views := s.List(testNow)
	if len(views) != 2 || views[0].ID != "followup_2" || views[1].ID != "followup_3" {
		t.Fatalf("unexpected remaining order %+v", views)
	}
	if len(p.Items) != 2 {
		t.Fatalf("expected removal persisted")
	}
}

func TestAdd(t *testing.T) {
	s, _ := newSampleScheduler(t)
	f, err := s.Add(Input{
		ContactName:   " Ada ",
		PhoneNumber:   "+4400",
		ScheduledDate: testNow.Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if f.ID == "" || f.ContactName != "Ada" || f.Status != models.StatusPending {
		t.Fatalf("unexpected follow-up %+v", f)
	}
	if f.Priority != models.PriorityMedium {
		t.Fatalf("expected default medium priority, got %s", f.Priority)
	}
	if f.OriginalCallID != "" {
		t.Fatalf("expected no call link")
	}
	views := s.Current()
	last := views[len(views)-1]
	if last.ID != f.ID || last.Derived != models.StatusOverdue {
		t.Fatalf("expected new entry appended and derived overdue, got %+v", last)
	}
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"missing name", Input{ScheduledDate: testNow}},
		{"blank name", Input{ContactName: "  ", ScheduledDate: testNow}},
		{"missing date", Input{ContactName: "Ada"}},
		{"bad priority", Input{ContactName: "Ada", ScheduledDate: testNow, Priority: "urgent"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := newSampleScheduler(t)
			if _, err := s.Add(tt.in); !errors.Is(err, models.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if s.Len() != 3 || p.Saves != 0 {
				t.Fatalf("scheduler must be unchanged")
			}
		})
	}
}

func TestFromCallLinksRecord(t *testing.T) {
	s, _ := newSampleScheduler(t)
	rec := sample.Calls(testNow)[2] // unknown caller
	f, err := s.Add(FromCall(rec, testNow.Add(time.Hour), "who was this?", models.PriorityHigh))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if f.OriginalCallID != "call_3" || f.ContactName != "+1122334455" || f.PhoneNumber != "+1122334455" {
		t.Fatalf("unexpected follow-up %+v", f)
	}
}

func TestLoadNeverKeepsStoredOverdue(t *testing.T) {
	p := NewMemoryProvider(models.FollowUp{ID: "x", ContactName: "A", ScheduledDate: testNow.Add(time.Hour), Status: models.StatusOverdue})
	s := NewScheduler(p, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	f, _ := s.Get("x")
	if f.Status != models.StatusPending {
		t.Fatalf("expected stored overdue to load as pending, got %s", f.Status)
	}
	if DeriveStatus(f, testNow) != models.StatusPending {
		t.Fatalf("future follow-up should derive pending")
	}
}
