package cmd

import (
	"fmt"
	"strconv"

	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/spf13/cobra"
)

// defaultTopN is how many tasks `prio top` shows without an argument.
const defaultTopN = 3

var topCmd = &cobra.Command{
	Use:   "top [n] [file]",
	Short: "Show the N highest-priority tasks",
	Long: `Show the highest-priority tasks, 3 unless n is given.

A single argument that is not a number is taken as the file.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runTop,
}

// parseTopArgs splits "[n] [file]" into a count and the remaining file args.
func parseTopArgs(args []string) (int, []string, error) {
	if len(args) == 0 {
		return defaultTopN, nil, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		if len(args) == 1 {
			return defaultTopN, args, nil
		}
		return 0, nil, fmt.Errorf("invalid count %q: must be a whole number", args[0])
	}
	if n < 1 {
		return 0, nil, fmt.Errorf("count must be at least 1, got %d", n)
	}
	return n, args[1:], nil
}

func runTop(_ *cobra.Command, args []string) error {
	n, fileArgs, err := parseTopArgs(args)
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	ranked, err := s.rankedTasks(fileArgs, nil, scoring.Descending)
	if err != nil {
		return err
	}
	s.renderer().Table(scoring.Top(ranked, n), n)
	return nil
}
