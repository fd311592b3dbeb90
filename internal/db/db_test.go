package db

import (
	"path/filepath"
	"sort"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/dialr/internal/followups"
	"github.com/balkashynov/dialr/internal/history"
	"github.com/balkashynov/dialr/internal/models"
	"github.com/balkashynov/dialr/internal/sample"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "dialr.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Compile-time checks that the repositories plug into the stores
var (
	_ history.Provider   = (*CallRepository)(nil)
	_ followups.Provider = (*FollowUpRepository)(nil)
)

func TestInitializeReportsCreation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dialr.db")
	created, err := Initialize(path)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if !created {
		t.Fatalf("expected fresh database to be reported as created")
	}
	if err := Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	created, err = Initialize(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if created {
		t.Fatalf("existing database should not be reported as created")
	}
	_ = Close()
}

func TestCallRepositoryRoundTripKeepsOrderAndTags(t *testing.T) {
	repo := NewCallRepository(openTestDB(t))
	calls := sample.Calls(testNow)
	if err := repo.Save(calls); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(calls) {
		t.Fatalf("expected %d records, got %d", len(calls), len(got))
	}
	for i := range calls {
		if got[i].ID != calls[i].ID {
			t.Fatalf("order changed at %d: %s vs %s", i, got[i].ID, calls[i].ID)
		}
		if !got[i].Timestamp.Equal(calls[i].Timestamp) {
			t.Fatalf("timestamp changed for %s", calls[i].ID)
		}
	}
	tags := got[0].TagNames()
	sort.Strings(tags)
	if len(tags) != 2 || tags[0] != "Important" || tags[1] != "Lead" {
		t.Fatalf("unexpected tags %v", tags)
	}
	if !got[0].HasRecording || got[2].Direction != models.DirectionMissed {
		t.Fatalf("fields not persisted: %+v", got[0])
	}
}

func TestCallRepositorySaveReplaces(t *testing.T) {
	repo := NewCallRepository(openTestDB(t))
	if err := repo.Save(sample.Calls(testNow)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(sample.Calls(testNow)[:1]); err != nil {
		t.Fatalf("second save: %v", err)
	}
	n, err := repo.Count()
	if err != nil || n != 1 {
		t.Fatalf("expected 1 record, got %d (%v)", n, err)
	}
	if err := repo.Save(nil); err != nil {
		t.Fatalf("empty save: %v", err)
	}
	if n, _ := repo.Count(); n != 0 {
		t.Fatalf("expected empty history, got %d", n)
	}
}

func TestHistoryStoreOverSQLite(t *testing.T) {
	gdb := openTestDB(t)
	if err := SeedSample(gdb, testNow); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := history.NewStore(NewCallRepository(gdb))
	if err := store.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := store.Add(models.CallRecord{Number: "555", Direction: models.DirectionIncoming, Timestamp: testNow, DurationSeconds: 12, Tags: models.TagsFromNames([]string{"Lead"})}); err != nil {
		t.Fatalf("add: %v", err)
	}

	reloaded := history.NewStore(NewCallRepository(gdb))
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	all := reloaded.List(history.FilterAll, "")
	if len(all) != 5 || all[0].Number != "555" {
		t.Fatalf("expected new call first after reload, got %d records", len(all))
	}
	if reloaded.Count(history.FilterOutgoing) != 2 {
		t.Fatalf("expected 2 outgoing")
	}
}

func TestFollowUpRepositoryNeverStoresOverdue(t *testing.T) {
	repo := NewFollowUpRepository(openTestDB(t))
	items := sample.FollowUps(testNow)
	items[1].Status = models.StatusOverdue
	items[2].Status = models.StatusCompleted
	if err := repo.Save(items); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 follow-ups, got %d", len(got))
	}
	if got[1].Status != models.StatusPending {
		t.Fatalf("overdue must be stored as pending, got %s", got[1].Status)
	}
	if got[2].Status != models.StatusCompleted {
		t.Fatalf("completed must persist, got %s", got[2].Status)
	}
	if got[0].OriginalCallID != "call_1" || got[0].Priority != models.PriorityHigh {
		t.Fatalf("fields not persisted: %+v", got[0])
	}
}

func TestSchedulerOverSQLite(t *testing.T) {
	gdb := openTestDB(t)
	if err := SeedSample(gdb, testNow); err != nil {
		t.Fatalf("seed: %v", err)
	}
	clock := func() time.Time { return testNow }
	s := followups.NewScheduler(NewFollowUpRepository(gdb), clock)
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := s.Complete("followup_2"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := s.Remove("followup_3"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	reloaded := followups.NewScheduler(NewFollowUpRepository(gdb), clock)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 follow-ups, got %d", reloaded.Len())
	}
	if reloaded.OverdueCount(testNow) != 0 || reloaded.PendingCount(testNow) != 1 {
		t.Fatalf("unexpected counts after reload")
	}
}
