package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show help for dialr or one of its commands",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				// Defer to cobra's per-command help
				if target, _, err := cmd.Root().Find(args); err == nil && target != cmd.Root() {
					_ = target.Help()
					return
				}
			}
			showCustomHelp(cmd.OutOrStdout())
		},
	}
}

func showCustomHelp(out io.Writer) {
	fmt.Fprint(out, `
██████╗ ██╗ █████╗ ██╗     ██████╗
██╔══██╗██║██╔══██╗██║     ██╔══██╗
██║  ██║██║███████║██║     ██████╔╝
██║  ██║██║██╔══██║██║     ██╔══██╗
██████╔╝██║██║  ██║███████╗██║  ██║
╚═════╝ ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝

dialr - Terminal Phone Dialer

COMMANDS:

  (no command)            Open the full-screen app
    Tabs: Dialer · History · Follow-ups · Profile · Settings
      tab/shift+tab       Switch tab
      0-9 * #             Dial
      enter               Place call / end call
      /                   Search history
      c                   Call back the selected call or follow-up
      n                   Follow up on the selected call
      a / d / x           Add / complete / delete follow-up
      q                   Quit (hangs up first during a call)

  call <number>           Open the dialer with a number entered
    --no-ui               Place and end the call directly
    --duration            Call length recorded with --no-ui

  log <direction> <number>
                          Record an incoming, outgoing or missed call
    -n, --name            Contact name
    -d, --duration        Call length (90s, 4m5s)
    -t, --tags            Comma-separated tags
    --note                Call notes
    --recording           Mark the call as recorded

  history [query]         List calls with their IDs, newest first (alias: ls)
    -f, --filter          all|outgoing|incoming|missed
    -q, --query           Search number, name and notes
    --json                JSON output

  followup add            Schedule a follow-up (alias: fu)
    -n, --name            Contact name
    -p, --phone           Phone number
    --at                  dd/mm/yyyy [HH:MM], today HH:MM, tomorrow [HH:MM], in 2 hours
    --priority            low|medium|high
    --note                Notes
    --call                Fill contact details from a call (ID prefix is enough)
  followup ls             List follow-ups with derived status
    -s, --status          pending|completed|overdue
    --json                JSON output
  followup done <id>      Mark completed (ID prefix is enough)
  followup rm <id>        Delete a follow-up

  version                 Show version information
  help [command]          Show this help

GLOBAL FLAGS:
    --memory              Use sample data in memory, nothing is saved
    --db                  Database path (default ~/.dialr/dialr.db)
    --log-level           debug|info|warn|error

`)
}
