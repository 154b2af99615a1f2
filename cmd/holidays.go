package cmd

import (
	"fmt"
	"io"
	"maps"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/termcal/internal/holiday"
	"github.com/chris-regnier/termcal/internal/ui"
)

var (
	holidaysYear  int
	holidaysMonth int
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "List public holidays",
	Long: fmt.Sprintf(`List the public holidays of the configured country for a year or a month.

Supported countries: %v. A known country with an unknown subdivision uses its national list; unknown countries fall back to %s.`, holiday.SupportedCountries(), holiday.FallbackCountry),
	Example: `  termcal holidays
  termcal holidays --year 2027
  termcal holidays --month 12 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return holidaysRun(cmd.OutOrStdout(), holidaysYear, holidaysMonth)
	},
}

func holidaysRun(w io.Writer, year, month int) error {
	if month < 0 || month > 12 {
		return fmt.Errorf("invalid --month %d (use 1-12)", month)
	}
	if year == 0 {
		year = now().Year()
	}

	if !holidays.Settings().ShowHolidays && !jsonOutput {
		fmt.Fprintln(w, "Holidays are disabled (show_holidays = false)")
		return nil
	}

	found := make(map[time.Time]string)
	for m := time.January; m <= time.December; m++ {
		if month == 0 || int(m) == month {
			maps.Copy(found, holidays.InMonth(year, m))
		}
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToHolidayJSON(found))
	}
	ui.FormatHolidays(w, found)
	return nil
}

func init() {
	holidaysCmd.Flags().IntVar(&holidaysYear, "year", 0, "year (default current year)")
	holidaysCmd.Flags().IntVar(&holidaysMonth, "month", 0, "month 1-12 (default whole year)")
	rootCmd.AddCommand(holidaysCmd)
}
