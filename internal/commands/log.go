package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/dialr/internal/history"
	"github.com/balkashynov/dialr/internal/models"
	"github.com/balkashynov/dialr/internal/parser"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <incoming|outgoing|missed> <number>",
		Short: "Record a call that happened outside dialr",
		Long: `Record a call in the history.

Missed calls are always stored with zero duration.

Examples:
  dialr log incoming +0987654321 --name "Sarah Johnson" --duration 3m --tags support
  dialr log missed +1122334455`,
		Args: cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			direction, err := models.ParseDirection(args[0])
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			duration, _ := cmd.Flags().GetDuration("duration")
			note, _ := cmd.Flags().GetString("note")
			tags, _ := cmd.Flags().GetString("tags")
			recording, _ := cmd.Flags().GetBool("recording")

			rec, err := a.calls.Add(models.CallRecord{
				Number:          strings.TrimSpace(args[1]),
				ContactName:     strings.TrimSpace(name),
				Direction:       direction,
				Timestamp:       a.now(),
				DurationSeconds: int(duration.Seconds()),
				Notes:           note,
				HasRecording:    recording,
				Tags:            models.TagsFromNames(parser.ParseTags(tags)),
			})
			if err != nil {
				return fmt.Errorf("failed to record call: %w", err)
			}

			a.log.Info("call logged", zap.String("id", rec.ID), zap.String("direction", string(rec.Direction)))
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged %s call with %s", rec.Direction, rec.DisplayName())
			if rec.DurationSeconds > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%s)", history.FormatDuration(rec.DurationSeconds))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		}),
	}

	cmd.Flags().StringP("name", "n", "", "Contact name")
	cmd.Flags().DurationP("duration", "d", 0, "Call length (e.g. 90s, 4m5s)")
	cmd.Flags().String("note", "", "Call notes")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	cmd.Flags().Bool("recording", false, "Mark the call as recorded")
	return cmd
}
