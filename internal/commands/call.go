package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/dialr/internal/dialer"
	"github.com/balkashynov/dialr/internal/history"
	"github.com/balkashynov/dialr/internal/tabs"
	"github.com/balkashynov/dialr/internal/tui"
)

func newCallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <number>",
		Short: "Dial a number",
		Long: `Dial a number.

Opens the dialer with the number entered; press Enter to place the call.
With --no-ui the call is placed and ended right away and recorded with --duration.

Examples:
  dialr call 5551234
  dialr call 5551234 --no-ui --duration 4m5s`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			noUI, _ := cmd.Flags().GetBool("no-ui")
			if !noUI {
				deps := a.tuiDeps(args[0])
				deps.StartTab = tabs.Dialer
				return tui.Run(deps)
			}
			duration, _ := cmd.Flags().GetDuration("duration")
			return runDirectCall(cmd, a, args[0], duration)
		}),
	}

	cmd.Flags().Bool("no-ui", false, "Place and end the call without the full-screen app")
	cmd.Flags().Duration("duration", 0, "Call length recorded with --no-ui (e.g. 90s, 4m5s)")
	return cmd
}

// runDirectCall runs one call through a dial session on a clock that
// jumps forward by duration between placing and ending it
func runDirectCall(cmd *cobra.Command, a *app, number string, duration time.Duration) error {
	if duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}

	clock := a.now()
	session := dialer.NewSession(dialer.LogPlacer{Log: a.log}, func() time.Time { return clock })
	for _, r := range number {
		if err := session.AppendDigit(r); err != nil {
			return err
		}
	}

	if _, err := session.PlaceCall(context.Background()); err != nil {
		return fmt.Errorf("failed to place call: %w", err)
	}
	clock = clock.Add(duration)

	rec, err := session.EndCall()
	if err != nil {
		return err
	}
	rec, err = a.calls.Add(rec)
	if err != nil {
		return fmt.Errorf("failed to record call: %w", err)
	}

	a.log.Info("call recorded", zap.String("id", rec.ID), zap.Int("duration_seconds", rec.DurationSeconds))
	fmt.Fprintf(cmd.OutOrStdout(), "📞 Called %s (%s)\n", rec.Number, history.FormatDuration(rec.DurationSeconds))
	return nil
}
