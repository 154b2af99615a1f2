package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/termcal/internal/config"
	"github.com/chris-regnier/termcal/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowRun(cmd.OutOrStdout())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one configuration key",
	Long:  "Set one configuration key and write it to the config file.",
	Example: `  termcal config set country GB
  termcal config set show_holidays false
  termcal config set theme.preset dracula`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configSetRun(cmd.OutOrStdout(), args[0], args[1])
	},
}

func configShowRun(w io.Writer) error {
	if jsonOutput {
		return ui.FormatJSON(w, appConfig)
	}
	fmt.Fprintf(w, "# %s\n", cfgManager.Path())
	for _, key := range config.Keys() {
		fmt.Fprintf(w, "%s = %v\n", key, cfgManager.Get(key))
	}
	return nil
}

func configSetRun(w io.Writer, key, value string) error {
	if err := cfgManager.Set(key, value); err != nil {
		return err
	}
	cfg, err := cfgManager.Config()
	if err != nil {
		return err
	}
	appConfig = cfg
	logger.Info("config updated", "key", key)
	fmt.Fprintf(w, "%s = %v\n", key, cfgManager.Get(key))
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
