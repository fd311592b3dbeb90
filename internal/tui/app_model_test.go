package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/dialr/internal/config"
	"github.com/balkashynov/dialr/internal/dialer"
	"github.com/balkashynov/dialr/internal/followups"
	"github.com/balkashynov/dialr/internal/history"
	"github.com/balkashynov/dialr/internal/models"
	"github.com/balkashynov/dialr/internal/sample"
	"github.com/balkashynov/dialr/internal/tabs"
)

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

type testApp struct {
	model     AppModel
	clock     *testClock
	calls     *history.Store
	followUps *followups.Scheduler
}

func newTestApp(t *testing.T, outcome dialer.Outcome) *testApp {
	t.Helper()
	clock := &testClock{t: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)}

	calls := history.NewStore(history.NewMemoryProvider(sample.Calls(clock.t)...))
	if err := calls.Load(); err != nil {
		t.Fatalf("load calls: %v", err)
	}
	fups := followups.NewScheduler(followups.NewMemoryProvider(sample.FollowUps(clock.t)...), clock.Now)
	if err := fups.Load(); err != nil {
		t.Fatalf("load follow-ups: %v", err)
	}

	placer := dialer.PlacerFunc(func(context.Context, dialer.CallEvent) (dialer.Outcome, error) {
		return outcome, nil
	})
	m := NewAppModel(Deps{
		Session:   dialer.NewSession(placer, clock.Now),
		Calls:     calls,
		FollowUps: fups,
		Profile:   config.ProfileConfig{Name: "John Doe", Role: "Sales Representative"},
		Now:       clock.Now,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return &testApp{model: next.(AppModel), clock: clock, calls: calls, followUps: fups}
}

func (a *testApp) send(msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = a.model.Update(msg)
		a.model = next.(AppModel)
	}
	return cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestDialPadBuildsNumber(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	app.send(key("5"), key("5"), key("x"), key("5"), key("#"), key("backspace"))

	if got := app.model.session.Number(); got != "555" {
		t.Fatalf("expected 555, got %q", got)
	}
}

func TestPlaceAndEndCallRecordsHistory(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	before := app.calls.Len()

	app.send(key("5"), key("5"), key("5"), key("enter"))
	if !app.model.session.IsActive() {
		t.Fatal("expected call in progress")
	}

	app.clock.t = app.clock.t.Add(65 * time.Second)
	app.send(key("e"))

	if app.model.session.IsActive() {
		t.Fatal("expected call ended")
	}
	if app.calls.Len() != before+1 {
		t.Fatalf("expected %d calls, got %d", before+1, app.calls.Len())
	}
	latest := app.calls.List(history.FilterAll, "")[0]
	if latest.Number != "555" || latest.Direction != models.DirectionOutgoing || latest.DurationSeconds != 65 {
		t.Fatalf("unexpected record: %+v", latest)
	}
}

func TestEnterWithoutNumberDoesNothing(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	app.send(key("enter"))

	if app.model.session.IsActive() {
		t.Fatal("expected idle session")
	}
	if app.model.notice != "" {
		t.Fatalf("expected no notice, got %q", app.model.notice)
	}
}

func TestBusyLineShowsNotice(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeBusy)
	app.send(key("1"), key("enter"))

	if app.model.session.IsActive() {
		t.Fatal("busy line must not start a call")
	}
	if app.model.notice != "Line busy" {
		t.Fatalf("expected busy notice, got %q", app.model.notice)
	}

	// Next key clears the notice
	app.send(key("2"))
	if app.model.notice != "" {
		t.Fatalf("expected notice cleared, got %q", app.model.notice)
	}
}

func TestQuitDuringCallHangsUp(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	before := app.calls.Len()

	app.send(key("1"), key("enter"))
	cmd := app.send(key("q"))

	if isQuit(cmd) {
		t.Fatal("q during a call should hang up, not quit")
	}
	if app.model.session.IsActive() || app.calls.Len() != before+1 {
		t.Fatal("expected the call to be ended and recorded")
	}
	if !isQuit(app.send(key("q"))) {
		t.Fatal("expected q to quit when idle")
	}
}

func TestTabCycling(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	if app.model.ActiveTab() != tabs.Dialer {
		t.Fatalf("expected dialer first, got %s", app.model.ActiveTab())
	}

	app.send(key("tab"))
	if app.model.ActiveTab() != tabs.History {
		t.Fatalf("expected history, got %s", app.model.ActiveTab())
	}

	app.send(key("shift+tab"), key("shift+tab"))
	if app.model.ActiveTab() != tabs.Settings {
		t.Fatalf("expected settings after wrapping, got %s", app.model.ActiveTab())
	}
}

func TestHistorySearchAndFilter(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	app.send(key("tab"))

	app.send(key("right"))
	if app.model.history.filter != history.FilterOutgoing {
		t.Fatalf("expected outgoing filter, got %s", app.model.history.filter)
	}
	if n := len(app.model.visibleCalls()); n != 2 {
		t.Fatalf("expected 2 outgoing calls, got %d", n)
	}

	app.send(key("right"), key("right"), key("right"))
	if app.model.history.filter != history.FilterAll {
		t.Fatalf("expected filter to wrap to all, got %s", app.model.history.filter)
	}

	// Keys go to the search box while it has focus
	app.send(key("/"), key("sarah"))
	if !app.model.history.searching {
		t.Fatal("expected search mode")
	}
	visible := app.model.visibleCalls()
	if len(visible) != 1 || visible[0].ContactName != "Sarah Johnson" {
		t.Fatalf("unexpected search result: %+v", visible)
	}

	app.send(key("enter"))
	if app.model.history.searching || app.model.history.search.Value() != "sarah" {
		t.Fatal("enter should keep the query and leave search mode")
	}

	app.send(key("/"), key("esc"))
	if app.model.history.search.Value() != "" || len(app.model.visibleCalls()) != app.calls.Len() {
		t.Fatal("esc should clear the query")
	}
}

func TestFollowUpFromCall(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	before := app.followUps.Len()

	app.send(key("tab"), key("n"))
	if app.model.ActiveTab() != tabs.FollowUps || !app.model.follow.adding {
		t.Fatal("expected follow-up form on the follow-ups tab")
	}
	if got := app.model.follow.inputs[fieldName].Value(); got != "John Smith" {
		t.Fatalf("expected prefilled name, got %q", got)
	}

	app.send(key("tomorrow 10:00"), key("enter"), key("high"), key("enter"), key("enter"))

	if app.model.follow.adding {
		t.Fatal("expected form closed after submit")
	}
	if app.followUps.Len() != before+1 {
		t.Fatalf("expected %d follow-ups, got %d", before+1, app.followUps.Len())
	}
	added := app.followUps.Current()[before]
	if added.OriginalCallID != "call_1" || added.Priority != models.PriorityHigh {
		t.Fatalf("unexpected follow-up: %+v", added.FollowUp)
	}
	want := time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC)
	if !added.ScheduledDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, added.ScheduledDate)
	}
}

func TestFollowUpFormRejectsMissingSchedule(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	before := app.followUps.Len()

	app.send(key("tab"), key("tab"), key("a"), key("Ann"))
	// Jump to the last field and submit with no schedule
	app.send(key("shift+tab"), key("enter"))

	if !app.model.follow.adding {
		t.Fatal("form should stay open on invalid input")
	}
	if app.followUps.Len() != before {
		t.Fatal("nothing should be scheduled")
	}

	app.send(key("esc"))
	if app.model.follow.adding {
		t.Fatal("esc should close the form")
	}
}

func TestCompleteFollowUp(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	app.send(key("tab"), key("tab"), key("down"), key("d"))

	f, ok := app.followUps.Get("followup_2")
	if !ok || f.Status != models.StatusCompleted {
		t.Fatalf("expected followup_2 completed, got %+v", f)
	}
	if n := app.followUps.OverdueCount(app.clock.t); n != 0 {
		t.Fatalf("completed follow-up must not be overdue, got %d overdue", n)
	}
}

func TestSettingsToggleAndSync(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	app.send(key("shift+tab"), key("down"), key(" "))

	if app.model.settings.toggles[1].on {
		t.Fatal("expected second toggle off")
	}

	app.clock.t = app.clock.t.Add(time.Minute)
	app.send(key("s"))
	if !app.model.settings.lastSync.Equal(app.clock.t) {
		t.Fatalf("expected last sync %v, got %v", app.clock.t, app.model.settings.lastSync)
	}

	app.send(key("o"))
	if app.model.settings.online {
		t.Fatal("expected offline")
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)

	tests := []struct {
		tab  tabs.Tab
		want string
	}{
		{tabs.Dialer, "Enter phone number"},
		{tabs.History, "John Smith"},
		{tabs.FollowUps, "1 overdue"},
		{tabs.Profile, "John Doe"},
		{tabs.Settings, "Last sync: 12:00:00"},
	}
	for _, tt := range tests {
		if err := app.model.router.Select(tt.tab); err != nil {
			t.Fatalf("select %s: %v", tt.tab, err)
		}
		view := app.model.View()
		if !strings.Contains(view, "Dialing App") {
			t.Fatalf("%s: missing header", tt.tab)
		}
		if !strings.Contains(view, tt.want) {
			t.Fatalf("%s: expected %q in view", tt.tab, tt.want)
		}
	}
}

func TestRenderBigClockHours(t *testing.T) {
	short := renderBigClock(65 * time.Second)
	long := renderBigClock(time.Hour + 5*time.Second)
	if strings.Count(short, "\n") != 4 || strings.Count(long, "\n") != 4 {
		t.Fatal("expected five rows")
	}
	if len(long) <= len(short) {
		t.Fatal("expected hours to widen the clock")
	}
}

func TestCallBackFromHistory(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	app.send(key("7"), key("tab"), key("down"), key("c"))

	if app.model.ActiveTab() != tabs.Dialer {
		t.Fatalf("expected dialer, got %s", app.model.ActiveTab())
	}
	// call_2 is +0987654321; the pad has no '+' key and the old digits are cleared
	if got := app.model.session.Number(); got != "0987654321" {
		t.Fatalf("expected 0987654321, got %q", got)
	}

	app.send(key("enter"))
	if !app.model.session.IsActive() {
		t.Fatal("expected the loaded number to be placeable")
	}
}

func TestCallNowFromFollowUp(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	app.send(key("tab"), key("tab"), key("down"), key("down"), key("c"))

	if app.model.ActiveTab() != tabs.Dialer {
		t.Fatalf("expected dialer, got %s", app.model.ActiveTab())
	}
	if got := app.model.session.Number(); got != "5566778899" {
		t.Fatalf("expected Mike Wilson's number, got %q", got)
	}
}

func TestCallBackIgnoredDuringCall(t *testing.T) {
	app := newTestApp(t, dialer.OutcomeInitiated)
	app.send(key("1"), key("enter"), key("tab"), key("c"))

	if app.model.ActiveTab() != tabs.History {
		t.Fatalf("expected to stay on history, got %s", app.model.ActiveTab())
	}
	if got := app.model.session.Number(); got != "1" {
		t.Fatalf("active call number must not change, got %q", got)
	}
}
