package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/termcal/internal/event"
	"github.com/chris-regnier/termcal/internal/storage"
	"github.com/chris-regnier/termcal/internal/ui"
)

var forceDelete bool

// confirmDelete asks before deleting; tests replace it.
var confirmDelete = func(e event.Event) (bool, error) {
	return ui.Confirm(fmt.Sprintf("Delete '%s'?", e.Title), ui.ResolveTheme(appConfig.Theme))
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a calendar event",
	Long:  "Permanently delete an event. Requires confirmation unless --force is used.",
	Example: `  termcal delete a3kf9x2m
  termcal delete a3kf9x2m --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteRun(cmd.OutOrStdout(), args[0], forceDelete)
	},
}

func deleteRun(w io.Writer, id string, force bool) error {
	e, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}

	if !force {
		fmt.Fprintf(w, "Event: %s (%s %s)\n", e.Title, e.Date.Format("2006-01-02"), e.DisplayTime())
		confirmed, err := confirmDelete(e)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	deleted, err := store.Delete(id)
	if err != nil {
		return err
	}
	logger.Info("event deleted", "id", id, "deleted", deleted)

	if jsonOutput {
		return ui.FormatJSON(w, ui.DeleteResult{ID: id, Deleted: deleted})
	}
	ui.FormatEventDeleted(w, e)
	return nil
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
