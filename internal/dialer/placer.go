package dialer

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Outcome is the host's answer to a call-initiation event
type Outcome string

const (
	OutcomeInitiated Outcome = "initiated"
	OutcomeBusy      Outcome = "busy"
	OutcomeFailed    Outcome = "failed"
)

// CallEvent is emitted when a call is placed
type CallEvent struct {
	Number   string
	PlacedAt time.Time
}

// Placer hands a call to the telephony host (native layer, simulator, test harness)
type Placer interface {
	Place(ctx context.Context, ev CallEvent) (Outcome, error)
}

// PlacerFunc adapts a function to Placer
type PlacerFunc func(ctx context.Context, ev CallEvent) (Outcome, error)

func (f PlacerFunc) Place(ctx context.Context, ev CallEvent) (Outcome, error) {
	return f(ctx, ev)
}

// LogPlacer records the event in the log and always reports the call as initiated.
// There is no telephony behind it.
type LogPlacer struct {
	Log *zap.Logger
}

func (p LogPlacer) Place(_ context.Context, ev CallEvent) (Outcome, error) {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("initiating call",
		zap.String("number", ev.Number),
		zap.Time("placed_at", ev.PlacedAt),
	)
	return OutcomeInitiated, nil
}
