package cmd

import (
	"errors"

	"github.com/rnwolfe/prio/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Browse ranked tasks interactively",
	Long: `Open a full-screen list of ranked tasks.

Keys: j/k move, enter shows the score breakdown, o flips the order,
/ filters by name, q quits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func runBrowse(_ *cobra.Command, args []string) error {
	if !tui.IsTTY() {
		return errors.New("browse needs an interactive terminal; use \"prio score\" instead")
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	tasks, err := s.load(s.inputPath(args), nil)
	if err != nil {
		return err
	}
	return tui.RunBrowse(tui.NewEntries(s.scorer, s.score(tasks)), s.now)
}
