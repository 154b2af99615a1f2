package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/editor"
	"github.com/chris-regnier/termcal/internal/event"
	"github.com/chris-regnier/termcal/internal/ui"
)

type addOptions struct {
	date        string
	time        string
	description string
	useEditor   bool
}

var addOpts addOptions

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a calendar event",
	Long: `Add an event. The date defaults to today and an event without --time is
all day. Use --editor to write the description in your editor.`,
	Example: `  termcal add "Dentist" --date 2026-03-14 --time 09:30
  termcal add "Conference" --date 2026-05-02 --editor
  termcal add "Call mom"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := addOpts
		if opts.useEditor {
			content, _, err := editor.Edit(editor.ResolveEditor(appConfig.Editor), opts.description)
			if err != nil {
				return fmt.Errorf("editor: %w", err)
			}
			opts.description = content
		}
		_, err := addRun(cmd.OutOrStdout(), strings.Join(args, " "), opts)
		return err
	},
}

func addRun(w io.Writer, title string, opts addOptions) (event.Event, error) {
	date := calendar.Today(now())
	if opts.date != "" {
		d, err := parseDateFlag("date", opts.date)
		if err != nil {
			return event.Event{}, err
		}
		date = d
	}
	clock, err := parseTimeFlag(opts.time)
	if err != nil {
		return event.Event{}, err
	}

	e, err := event.New(title, date, clock, opts.description)
	if err != nil {
		return event.Event{}, err
	}
	if err := store.Add(e); err != nil {
		return event.Event{}, err
	}
	logger.Info("event created", "id", e.ID, "date", e.Date.Format("2006-01-02"))

	if jsonOutput {
		return e, ui.FormatJSON(w, e.ToRecord())
	}
	ui.FormatEventAdded(w, e)
	return e, nil
}

func init() {
	addCmd.Flags().StringVar(&addOpts.date, "date", "", "event date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addOpts.time, "time", "", "time of day (HH:MM); omit for all day")
	addCmd.Flags().StringVar(&addOpts.description, "description", "", "description (markdown)")
	addCmd.Flags().BoolVar(&addOpts.useEditor, "editor", false, "compose the description in $EDITOR")
	rootCmd.AddCommand(addCmd)
}
