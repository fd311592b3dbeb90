package dialer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/dialr/internal/models"
)

var (
	ErrLineBusy   = errors.New("line busy")
	ErrCallFailed = errors.New("call failed")
)

// State of a dial session
type State int

const (
	StateIdle State = iota
	StateInCall
)

func (s State) String() string {
	if s == StateInCall {
		return "in_call"
	}
	return "idle"
}

// Session tracks number entry on the dial pad and the active call flag.
// It is not safe for concurrent use; the UI loop owns it.
type Session struct {
	number   []rune
	state    State
	placedAt time.Time

	placer Placer
	now    func() time.Time
}

// NewSession creates an idle session. A nil placer means LogPlacer with a no-op logger.
func NewSession(placer Placer, now func() time.Time) *Session {
	if placer == nil {
		placer = LogPlacer{}
	}
	if now == nil {
		now = time.Now
	}
	return &Session{placer: placer, now: now}
}

// Number returns the entered number
func (s *Session) Number() string {
	return string(s.number)
}

// IsActive reports whether a call is in progress
func (s *Session) IsActive() bool {
	return s.state == StateInCall
}

func (s *Session) State() State {
	return s.state
}

// PlacedAt returns when the active call was placed; zero while idle
func (s *Session) PlacedAt() time.Time {
	if !s.IsActive() {
		return time.Time{}
	}
	return s.placedAt
}

// Elapsed returns how long the active call has been running
func (s *Session) Elapsed(now time.Time) time.Duration {
	if !s.IsActive() {
		return 0
	}
	if d := now.Sub(s.placedAt); d > 0 {
		return d
	}
	return 0
}

// IsDialKey reports whether r is a key on the dial pad
func IsDialKey(r rune) bool {
	return (r >= '0' && r <= '9') || r == '*' || r == '#'
}

// AppendDigit adds one dial pad character. Ignored while a call is active.
func (s *Session) AppendDigit(d rune) error {
	if s.IsActive() {
		return fmt.Errorf("append digit during call: %w", models.ErrInvalidState)
	}
	if !IsDialKey(d) {
		return fmt.Errorf("%q is not a dial key: %w", d, models.ErrValidation)
	}
	s.number = append(s.number, d)
	return nil
}

// Backspace removes the last character, if any
func (s *Session) Backspace() {
	if s.IsActive() || len(s.number) == 0 {
		return
	}
	s.number = s.number[:len(s.number)-1]
}

// Clear resets the entered number
func (s *Session) Clear() {
	if s.IsActive() {
		return
	}
	s.number = nil
}

// PlaceCall emits a call-initiation event for the entered number.
// The session only moves to in-call when the placer reports the call as initiated.
func (s *Session) PlaceCall(ctx context.Context) (CallEvent, error) {
	if s.IsActive() {
		return CallEvent{}, fmt.Errorf("call already active: %w", models.ErrInvalidState)
	}
	number := s.Number()
	if strings.TrimSpace(number) == "" {
		return CallEvent{}, fmt.Errorf("no number entered: %w", models.ErrValidation)
	}

	ev := CallEvent{Number: number, PlacedAt: s.now()}
	outcome, err := s.placer.Place(ctx, ev)
	if err != nil {
		return ev, fmt.Errorf("%w: %v", ErrCallFailed, err)
	}
	switch outcome {
	case OutcomeInitiated:
		s.state = StateInCall
		s.placedAt = ev.PlacedAt
		return ev, nil
	case OutcomeBusy:
		return ev, ErrLineBusy
	default:
		return ev, ErrCallFailed
	}
}

// EndCall hangs up and returns the outgoing call record.
// The entered number stays on the pad.
func (s *Session) EndCall() (models.CallRecord, error) {
	if !s.IsActive() {
		return models.CallRecord{}, fmt.Errorf("no active call: %w", models.ErrInvalidState)
	}
	ended := s.now()
	rec := models.CallRecord{
		ID:              uuid.NewString(),
		Number:          s.Number(),
		Direction:       models.DirectionOutgoing,
		Timestamp:       s.placedAt,
		DurationSeconds: int(s.Elapsed(ended).Seconds()),
	}
	s.state = StateIdle
	s.placedAt = time.Time{}
	return rec, nil
}
