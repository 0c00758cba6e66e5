package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hobbsbros/carlo/internal/config"
	"github.com/hobbsbros/carlo/internal/render"
)

// Version is set by build flags.
var Version = "0.1.0-dev"

var configPath string

// settings holds the process-wide defaults loaded from configPath (or
// its Viper-derived fallbacks) before any subcommand runs.
var settings config.Settings

var rootCmd = &cobra.Command{
	Use:   "carlo",
	Short: "A calculator language for physics and engineering notes",
	Long: `Carlo is a small calculator language: assign dimensioned values
to names, combine them with + - * /, and get back a rendering that
tracks units through the arithmetic.

  carlo run notes.carlo
  carlo latex notes.carlo > notes.tex

Running carlo with a file and no subcommand evaluates it using the
configured default_mode (plain text unless overridden).`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		settings = loaded
		render.SetPrecision(settings.Precision)
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runSource(args, settings.DefaultMode == config.ModeLaTeX)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a carlo config file (YAML)")
	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
}
