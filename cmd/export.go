package cmd

import (
	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/rnwolfe/prio/internal/ui"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Score tasks and write the JSON export only",
	Long: `Score tasks and write them, highest first, to a JSON file with the
run timestamp, a run id, the reference date and the weights used.

Unlike "prio score", a failed write exits non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Export file (default files.output from config)")
}

func runExport(_ *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	ranked, err := s.rankedTasks(args, nil, scoring.Descending)
	if err != nil {
		return err
	}
	path, err := s.export(ranked, exportOut)
	if err != nil {
		return err
	}
	ui.Ok("Results exported to " + path)
	return nil
}
