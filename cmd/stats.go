package cmd

import (
	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Show score statistics and priority buckets",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func runStats(_ *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	ranked, err := s.rankedTasks(args, nil, scoring.Descending)
	if err != nil {
		return err
	}
	s.renderer().Stats(scoring.Summarize(ranked))
	return nil
}
