package cmd

import (
	"bytes"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/event"
	"github.com/chris-regnier/termcal/internal/ui"
)

type listOptions struct {
	date string
	from string
	days int
	all  bool
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List calendar events",
	Long:  "List calendar events in date order. Defaults to the upcoming agenda window.",
	Example: `  termcal list
  termcal list --date 2026-01-31
  termcal list --from 2026-01-01 --days 7
  termcal list --all --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(cmd.OutOrStdout(), listOpts)
	},
}

func listRun(w io.Writer, opts listOptions) error {
	var events []event.Event
	switch {
	case opts.all:
		events = store.All()
	case opts.date != "":
		d, err := parseDateFlag("date", opts.date)
		if err != nil {
			return err
		}
		events = store.ByDate(d)
	default:
		from := calendar.Today(now())
		if opts.from != "" {
			d, err := parseDateFlag("from", opts.from)
			if err != nil {
				return err
			}
			from = d
		}
		days := opts.days
		if days <= 0 {
			days = appConfig.AgendaDays
		}
		events = store.Upcoming(from, days)
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToRecords(events))
	}
	var buf bytes.Buffer
	ui.FormatEventList(&buf, events)
	return ui.OutputOrPage(w, buf.String(), ui.ResolveTheme(appConfig.Theme))
}

func init() {
	listCmd.Flags().StringVar(&listOpts.date, "date", "", "events on one date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listOpts.from, "from", "", "start of the window (YYYY-MM-DD, default today)")
	listCmd.Flags().IntVar(&listOpts.days, "days", 0, "length of the window in days (default agenda_days)")
	listCmd.Flags().BoolVar(&listOpts.all, "all", false, "list every event")
	listCmd.MarkFlagsMutuallyExclusive("all", "date", "from")
	rootCmd.AddCommand(listCmd)
}
