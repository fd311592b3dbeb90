package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/dialr/internal/followups"
	"github.com/balkashynov/dialr/internal/models"
	"github.com/balkashynov/dialr/internal/parser"
)

func newFollowUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "followup",
		Aliases: []string{"fu"},
		Short:   "Schedule and track follow-up calls",
	}
	cmd.AddCommand(newFollowUpAddCmd())
	cmd.AddCommand(newFollowUpListCmd())
	cmd.AddCommand(newFollowUpDoneCmd())
	cmd.AddCommand(newFollowUpRemoveCmd())
	return cmd
}

func newFollowUpAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a follow-up",
		Long: `Schedule a follow-up call.

--at accepts: dd/mm/yyyy [HH:MM], today HH:MM, tomorrow [HH:MM], in X minutes/hours/days/weeks.
--call links the follow-up to a call record and fills name and phone from it.

Examples:
  dialr followup add --name "John Smith" --phone +1234567890 --at "tomorrow 10:00" --priority high
  dialr followup add --call call_1 --at "in 2 days"`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			name, _ := cmd.Flags().GetString("name")
			phone, _ := cmd.Flags().GetString("phone")
			at, _ := cmd.Flags().GetString("at")
			priorityFlag, _ := cmd.Flags().GetString("priority")
			note, _ := cmd.Flags().GetString("note")
			callID, _ := cmd.Flags().GetString("call")

			when, err := parser.ParseSchedule(at, a.now())
			if err != nil {
				return err
			}
			priority, err := models.ParsePriority(priorityFlag)
			if err != nil {
				return err
			}

			in := followups.Input{
				ContactName:   name,
				PhoneNumber:   phone,
				ScheduledDate: when,
				Notes:         note,
				Priority:      priority,
			}
			if callID != "" {
				id, err := resolveID(a.callIDs(), callID, "call")
				if err != nil {
					return err
				}
				rec, _ := a.calls.Get(id)
				in = followups.FromCall(rec, when, note, priority)
				// Explicit flags win over the call's details
				if name != "" {
					in.ContactName = name
				}
				if phone != "" {
					in.PhoneNumber = phone
				}
			}

			f, err := a.followUps.Add(in)
			if err != nil {
				return fmt.Errorf("failed to schedule follow-up: %w", err)
			}

			a.log.Info("follow-up scheduled", zap.String("id", f.ID), zap.Time("scheduled_date", f.ScheduledDate))
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Follow-up with %s scheduled for %s - ID: %s\n",
				f.ContactName, followups.FormatSchedule(f.ScheduledDate, a.now()), shortIDs(a.followUpIDs())[f.ID])
			return nil
		}),
	}

	cmd.Flags().StringP("name", "n", "", "Contact name")
	cmd.Flags().StringP("phone", "p", "", "Phone number")
	cmd.Flags().String("at", "", "When to follow up")
	cmd.Flags().String("priority", "medium", "Priority: low|medium|high")
	cmd.Flags().String("note", "", "Notes")
	cmd.Flags().String("call", "", "ID of the call this follows up on")
	return cmd
}

func newFollowUpListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List follow-ups with their current status",
		Args:    cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			statusFlag, _ := cmd.Flags().GetString("status")
			status := models.FollowUpStatus(strings.ToLower(statusFlag))
			switch status {
			case "", models.StatusPending, models.StatusCompleted, models.StatusOverdue:
			default:
				return fmt.Errorf("unknown status %q, use pending, completed or overdue: %w", statusFlag, models.ErrValidation)
			}

			now := a.now()
			var views []followups.View
			for _, v := range a.followUps.List(now) {
				if status == "" || v.Derived == status {
					views = append(views, v)
				}
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				// Report the derived status, not the stored one
				items := make([]models.FollowUp, len(views))
				for i, v := range views {
					items[i] = v.FollowUp
					items[i].Status = v.Derived
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			if len(views) == 0 {
				fmt.Fprintln(out, "No follow-ups found. Use 'dialr followup add' to schedule one.")
				return nil
			}

			fmt.Fprintf(out, "%d pending · %d overdue\n\n", a.followUps.PendingCount(now), a.followUps.OverdueCount(now))
			// Prefixes are unique across every follow-up, not just the listed ones
			short := shortIDs(a.followUpIDs())
			fmt.Fprintf(out, "%-12s %-10s %-8s %-20s %-16s %s\n", "ID", "STATUS", "PRIORITY", "CONTACT", "PHONE", "WHEN")
			fmt.Fprintln(out, strings.Repeat("-", 84))
			for _, v := range views {
				fmt.Fprintf(out, "%-12s %-10s %-8s %-20s %-16s %s\n",
					short[v.ID],
					v.Derived,
					v.Priority,
					truncate(v.ContactName, 18),
					v.PhoneNumber,
					followups.FormatSchedule(v.ScheduledDate, now))
			}
			return nil
		}),
	}

	cmd.Flags().StringP("status", "s", "", "Filter by status: pending, completed, overdue")
	cmd.Flags().Bool("json", false, "Print follow-ups as JSON")
	return cmd
}

func newFollowUpDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a follow-up as completed",
		Long:  "Mark a follow-up as completed. The ID may be shortened to any unique prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := resolveID(a.followUpIDs(), args[0], "follow-up")
			if err != nil {
				return err
			}
			f, err := a.followUps.Complete(id)
			if err != nil {
				return fmt.Errorf("failed to complete follow-up: %w", err)
			}
			a.log.Info("follow-up completed", zap.String("id", f.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Follow-up with %s completed\n", f.ContactName)
			return nil
		}),
	}
}

func newFollowUpRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a follow-up",
		Args:    cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := resolveID(a.followUpIDs(), args[0], "follow-up")
			if err != nil {
				return err
			}
			if err := a.followUps.Remove(id); err != nil {
				return fmt.Errorf("failed to remove follow-up: %w", err)
			}
			a.log.Info("follow-up removed", zap.String("id", id))
			fmt.Fprintf(cmd.OutOrStdout(), "🗑  Follow-up %s removed\n", id)
			return nil
		}),
	}
}

func (a *app) followUpIDs() []string {
	views := a.followUps.Current()
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}
