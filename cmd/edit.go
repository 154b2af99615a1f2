package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/termcal/internal/editor"
	"github.com/chris-regnier/termcal/internal/storage"
	"github.com/chris-regnier/termcal/internal/ui"
)

// editChanges holds the fields to change; nil leaves a field as is.
type editChanges struct {
	title       *string
	date        *string
	time        *string
	description *string
}

var editEditor bool

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a calendar event",
	Long: `Change fields of an existing event. Only the flags given are changed;
--time "" makes the event all day. Use --editor to edit the description in
your editor.`,
	Example: `  termcal edit a3kf9x2m --title "Dentist (moved)" --date 2026-03-21
  termcal edit a3kf9x2m --time ""
  termcal edit a3kf9x2m --editor`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ch editChanges
		flags := cmd.Flags()
		for name, dst := range map[string]**string{
			"title":       &ch.title,
			"date":        &ch.date,
			"time":        &ch.time,
			"description": &ch.description,
		} {
			if flags.Changed(name) {
				v, _ := flags.GetString(name)
				*dst = &v
			}
		}

		if editEditor {
			e, ok := store.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", storage.ErrNotFound, args[0])
			}
			initial := e.Description
			if ch.description != nil {
				initial = *ch.description
			}
			content, changed, err := editor.Edit(editor.ResolveEditor(appConfig.Editor), initial)
			if err != nil {
				return fmt.Errorf("editor: %w", err)
			}
			if changed || ch.description != nil {
				ch.description = &content
			}
		}
		return editRun(cmd.OutOrStdout(), args[0], ch)
	},
}

func editRun(w io.Writer, id string, ch editChanges) error {
	orig, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}

	e := orig
	if ch.title != nil {
		e.Title = strings.TrimSpace(*ch.title)
	}
	if ch.date != nil {
		d, err := parseDateFlag("date", *ch.date)
		if err != nil {
			return err
		}
		e.Date = d
	}
	if ch.time != nil {
		clock, err := parseTimeFlag(*ch.time)
		if err != nil {
			return err
		}
		e.Time = clock
	}
	if ch.description != nil {
		e.Description = strings.TrimSpace(*ch.description)
	}

	if e.Equal(orig) {
		if jsonOutput {
			return ui.FormatJSON(w, e.ToRecord())
		}
		ui.FormatNoChanges(w, id)
		return nil
	}
	if err := e.Validate(); err != nil {
		return err
	}

	updated, err := store.Update(e)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	logger.Info("event updated", "id", id)

	if jsonOutput {
		return ui.FormatJSON(w, e.ToRecord())
	}
	ui.FormatEventUpdated(w, e)
	return nil
}

func init() {
	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("date", "", "new date (YYYY-MM-DD)")
	editCmd.Flags().String("time", "", `new time (HH:MM); "" for all day`)
	editCmd.Flags().String("description", "", "new description (markdown)")
	editCmd.Flags().BoolVar(&editEditor, "editor", false, "edit the description in $EDITOR")
	rootCmd.AddCommand(editCmd)
}
