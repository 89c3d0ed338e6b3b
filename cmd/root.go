package cmd

import (
	"os"

	"github.com/rnwolfe/prio/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagToday   string
	flagVerbose bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "prio [file]",
	Short: "Rank tasks by a weighted priority score",
	Long: `prio scores tasks on urgency, importance, deadline proximity and effort,
then prints them ranked with summary statistics and exports the result as JSON.

Running prio with no subcommand is the same as "prio score".`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setupRun,
	RunE:              runScore,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/prio/config.toml)")
	pf.StringVar(&flagToday, "today", "", "Reference date for deadlines, YYYY-MM-DD (default today)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostic details to stderr")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	addScoreFlags(rootCmd.Flags())

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupRun applies global flags before any command runs.
func setupRun(_ *cobra.Command, _ []string) error {
	configureLogging(ui.Stderr(), flagVerbose)
	if flagNoColor {
		ui.DisableColor()
	}
	return nil
}
