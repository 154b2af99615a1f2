package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/history"
	"github.com/chris-regnier/termcal/internal/ui"
)

var (
	onThisDayDate string
	onThisDayAll  bool
)

var onThisDayCmd = &cobra.Command{
	Use:   "onthisday",
	Short: "Show a historical event for a date",
	Long:  "Show a random historical event that happened on the month and day of the given date.",
	Example: `  termcal onthisday
  termcal onthisday --date 2026-07-20
  termcal onthisday --all --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return onThisDayRun(cmd.Context(), cmd.OutOrStdout(), onThisDayDate, onThisDayAll)
	},
}

func onThisDayRun(ctx context.Context, w io.Writer, date string, all bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	d := calendar.Today(now())
	if date != "" {
		parsed, err := parseDateFlag("date", date)
		if err != nil {
			return err
		}
		d = parsed
	}

	if !all {
		if jsonOutput {
			fact, ok := facts.Random(ctx, d)
			if !ok {
				fact = history.Fact{Text: history.NoFacts}
			}
			return ui.FormatJSON(w, fact)
		}
		fmt.Fprintln(w, facts.EventForDisplay(ctx, d))
		return nil
	}

	list, ok := facts.Facts(ctx, d)
	if list == nil {
		list = []history.Fact{}
	}
	if jsonOutput {
		return ui.FormatJSON(w, list)
	}
	if !ok || len(list) == 0 {
		fmt.Fprintln(w, history.NoFacts)
		return nil
	}
	for _, f := range list {
		fmt.Fprintln(w, f)
	}
	return nil
}

func init() {
	onThisDayCmd.Flags().StringVar(&onThisDayDate, "date", "", "date (YYYY-MM-DD, default today)")
	onThisDayCmd.Flags().BoolVar(&onThisDayAll, "all", false, "list every event for the date")
	rootCmd.AddCommand(onThisDayCmd)
}
