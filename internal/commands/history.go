package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/dialr/internal/history"
	"github.com/balkashynov/dialr/internal/models"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history [query]",
		Aliases: []string{"ls"},
		Short:   "List the call history",
		Long: `List the call history, newest first.

The query matches number, contact name and notes, ignoring case.

Examples:
  dialr history
  dialr ls --filter missed
  dialr history sarah --json`,
		Args: cobra.ArbitraryArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			filterFlag, _ := cmd.Flags().GetString("filter")
			filter, err := history.ParseFilter(filterFlag)
			if err != nil {
				return err
			}
			query, _ := cmd.Flags().GetString("query")
			if len(args) > 0 {
				query = strings.Join(args, " ")
			}

			calls := a.calls.List(filter, query)
			out := cmd.OutOrStdout()

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(calls)
			}

			if len(calls) == 0 {
				fmt.Fprintln(out, "No calls found. Use 'dialr log' or 'dialr call' to add one.")
				return nil
			}
			printCallTable(out, a, calls)
			return nil
		}),
	}

	cmd.Flags().StringP("filter", "f", "all", "Filter by direction: all, outgoing, incoming, missed")
	cmd.Flags().StringP("query", "q", "", "Search number, name and notes")
	cmd.Flags().Bool("json", false, "Print records as JSON")
	return cmd
}

func printCallTable(out io.Writer, a *app, calls []models.CallRecord) {
	counts := a.calls.Counts()
	var header []string
	for _, f := range history.Filters() {
		header = append(header, fmt.Sprintf("%s %d", f.Label(), counts[f]))
	}
	fmt.Fprintln(out, strings.Join(header, " · "))
	fmt.Fprintln(out)

	now := a.now()
	short := shortIDs(a.callIDs())
	fmt.Fprintf(out, "%-10s %-9s %-22s %-16s %-10s %-7s %s\n", "ID", "DIRECTION", "CONTACT", "NUMBER", "WHEN", "LENGTH", "TAGS")
	fmt.Fprintln(out, strings.Repeat("-", 90))
	for _, call := range calls {
		contact := call.ContactName
		if contact == "" {
			contact = "Unknown"
		}

		length := "-"
		if call.DurationSeconds > 0 {
			length = history.FormatDuration(call.DurationSeconds)
		}

		fmt.Fprintf(out, "%-10s %-9s %-22s %-16s %-10s %-7s %s\n",
			short[call.ID],
			call.Direction,
			truncate(contact, 20),
			call.Number,
			history.FormatRelativeTime(call.Timestamp, now),
			length,
			strings.Join(call.TagNames(), ","))
	}
}

func (a *app) callIDs() []string {
	calls := a.calls.List(history.FilterAll, "")
	ids := make([]string, len(calls))
	for i, c := range calls {
		ids[i] = c.ID
	}
	return ids
}
