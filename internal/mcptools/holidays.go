package mcptools

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/termcal/internal/holiday"
)

// ListHolidaysHandler returns the handler function for the list_holidays MCP tool.
// Output is empty, not an error, when holidays are switched off.
func ListHolidaysHandler(holidays *holiday.Provider, now func() time.Time) func(ctx context.Context, req *mcp.CallToolRequest, input ListHolidaysInput) (*mcp.CallToolResult, ListHolidaysOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListHolidaysInput) (*mcp.CallToolResult, ListHolidaysOutput, error) {
		if input.Month < 0 || input.Month > 12 {
			return nil, ListHolidaysOutput{}, fmt.Errorf("month must be 1-12, got %d", input.Month)
		}
		year := input.Year
		if year == 0 {
			year = now().Year()
		}

		months := []time.Month{time.Month(input.Month)}
		if input.Month == 0 {
			months = months[:0]
			for m := time.January; m <= time.December; m++ {
				months = append(months, m)
			}
		}

		settings := holidays.Settings()
		country, _, _ := holiday.Resolve(settings.Country, settings.Subdivision)
		out := ListHolidaysOutput{Country: country, Holidays: []HolidayResult{}}
		for _, m := range months {
			inMonth := holidays.InMonth(year, m)
			dates := make([]time.Time, 0, len(inMonth))
			for d := range inMonth {
				dates = append(dates, d)
			}
			slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
			for _, d := range dates {
				out.Holidays = append(out.Holidays, HolidayResult{Date: d.Format("2006-01-02"), Name: inMonth[d]})
			}
		}
		return nil, out, nil
	}
}
