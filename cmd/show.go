package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/termcal/internal/storage"
	"github.com/chris-regnier/termcal/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a calendar event",
	Long:  "Display an event with its description rendered as markdown.",
	Example: `  termcal show a3kf9x2m
  termcal show a3kf9x2m --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showRun(cmd.OutOrStdout(), args[0])
	},
}

func showRun(w io.Writer, id string) error {
	e, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if jsonOutput {
		return ui.FormatJSON(w, e.ToRecord())
	}
	theme := ui.ResolveTheme(appConfig.Theme)
	var buf bytes.Buffer
	ui.FormatEventFull(&buf, e, theme.MarkdownStyle)
	return ui.OutputOrPage(w, buf.String(), theme)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
