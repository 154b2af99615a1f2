package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/config"
	"github.com/chris-regnier/termcal/internal/history"
	"github.com/chris-regnier/termcal/internal/holiday"
	"github.com/chris-regnier/termcal/internal/logging"
	"github.com/chris-regnier/termcal/internal/storage"
	"github.com/chris-regnier/termcal/internal/storage/jsonfile"
	"github.com/chris-regnier/termcal/internal/ui"
)

var (
	cfgFile    string
	jsonOutput bool
	cfgManager *config.Manager
	appConfig  *config.Config
	store      storage.Storage
	holidays   *holiday.Provider
	facts      *history.Provider
	logger     = logging.Discard()
	logCloser  io.Closer

	// now is the clock used for "today"; tests replace it.
	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "termcal",
	Short: "A terminal calendar",
	Long: `termcal is a terminal calendar with month, day and agenda views, public
holidays and an "on this day" fact for the selected date.

Run without a subcommand to open the interactive calendar. When stdout is not
a terminal the upcoming agenda is printed instead.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return agendaRun(os.Stdout)
		}
		return ui.RunTUI(ui.TUIConfig{
			Store:      store,
			Holidays:   holidays,
			Facts:      facts,
			Theme:      ui.ResolveTheme(appConfig.Theme),
			Editor:     appConfig.Editor,
			AgendaDays: appConfig.AgendaDays,
			Now:        now,
			Logger:     logger,
			Watch:      cfgManager.Watch,
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// setup loads the config and builds the shared components. Config problems
// are logged to stderr until the log file is open.
func setup() error {
	bootLogger := logging.New(os.Stderr, "warn")
	m, err := config.Load(cfgFile, bootLogger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg, err := m.Config()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfgManager, appConfig = m, cfg

	l, closer, err := logging.Setup(cfg.DataDir, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	logger, logCloser = l, closer

	store, err = openStore(cfg.DataDir, logger)
	if err != nil {
		return err
	}

	holidays = holiday.NewProvider(holiday.Settings{
		Country:      cfg.Country,
		Subdivision:  cfg.Subdivision,
		ShowHolidays: cfg.ShowHolidays,
	}, nil, logger)
	facts = history.NewProvider(cfg.HistoryURL, history.WithLogger(logger))

	logger.Debug("termcal started", "config", m.Path(), "data_dir", cfg.DataDir)
	return nil
}

func openStore(dataDir string, logger *slog.Logger) (storage.Storage, error) {
	s, err := jsonfile.New(jsonfile.Path(dataDir), logger)
	if err != nil {
		return nil, fmt.Errorf("initializing storage in %s: %w", filepath.Clean(dataDir), err)
	}
	return s, nil
}

func teardown() error {
	var err error
	if store != nil {
		err = store.Close()
	}
	if logCloser != nil {
		logCloser.Close()
	}
	return err
}

// agendaRun prints the upcoming events, the non-interactive view of the
// calendar.
func agendaRun(w io.Writer) error {
	events := store.Upcoming(calendar.Today(now()), appConfig.AgendaDays)
	if jsonOutput {
		return ui.FormatJSON(w, ui.ToRecords(events))
	}
	fmt.Fprintf(w, "Upcoming Events (Next %d days)\n\n", appConfig.AgendaDays)
	var buf bytes.Buffer
	ui.FormatEventList(&buf, events)
	return ui.OutputOrPage(w, buf.String(), ui.ResolveTheme(appConfig.Theme))
}
