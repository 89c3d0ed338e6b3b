package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/rnwolfe/prio/internal/task"
	"github.com/rnwolfe/prio/internal/tips"
	"github.com/rnwolfe/prio/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// orderValue adapts scoring.Order to a pflag value so bad input is a
// flag-parse error.
type orderValue scoring.Order

func (o *orderValue) String() string { return string(*o) }

func (o *orderValue) Set(s string) error {
	v, err := scoring.ParseOrder(s)
	if err != nil {
		return err
	}
	*o = orderValue(v)
	return nil
}

func (o *orderValue) Type() string { return "desc|asc" }

var (
	scoreTop      int
	scoreOrder    = orderValue(scoring.Descending)
	scoreAsc      bool
	scoreTasks    []string
	scoreOut      string
	scoreNoExport bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score, rank and export tasks",
	Long: `Score every task in a JSON or TOML file, print the ranked table and
statistics, and export the results as JSON.

The file defaults to files.input from config (sample_tasks.json).
Add tasks without a file using --task "name|urgency|importance|effort|deadline".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	addScoreFlags(scoreCmd.Flags())
}

// addScoreFlags registers the score flags; the root command shares them.
func addScoreFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&scoreTop, "top", "n", 0, "Show only the first N tasks in the chosen order")
	fs.Var(&scoreOrder, "order", "Sort order: desc or asc")
	fs.BoolVar(&scoreAsc, "asc", false, "Lowest score first (same as --order asc)")
	fs.StringArrayVarP(&scoreTasks, "task", "t", nil, `Add a task inline: "name|urgency|importance|effort|deadline"`)
	fs.StringVarP(&scoreOut, "out", "o", "", "Export file (default files.output from config)")
	fs.BoolVar(&scoreNoExport, "no-export", false, "Skip writing the JSON export")
}

func selectedOrder() scoring.Order {
	if scoreAsc {
		return scoring.Ascending
	}
	return scoring.Order(scoreOrder)
}

func runScore(_ *cobra.Command, args []string) error {
	if scoreTop < 0 {
		return fmt.Errorf("--top must not be negative, got %d", scoreTop)
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	r := s.renderer()

	printBanner(r.Width)
	ranked, err := s.rankedTasks(args, scoreTasks, selectedOrder())
	if err != nil {
		return err
	}

	r.Table(firstN(ranked, scoreTop), scoreTop)
	r.Stats(scoring.Summarize(ranked))

	if !scoreNoExport {
		ui.Section(ui.IconSave+"EXPORT", r.Width)
		// Exports are always highest first, whatever the display order.
		path, err := s.export(scoring.Rank(ranked, scoring.Descending), scoreOut)
		if err != nil {
			ui.Err(fmt.Sprintf("Error exporting results: %v", err))
		} else {
			ui.Ok("Results exported to " + path)
		}
	}

	printFooter(r.Width, s.now)
	return nil
}

// firstN keeps the first n of ranked without re-sorting, so --top follows
// the display order. n <= 0 keeps everything.
func firstN(ranked []task.Task, n int) []task.Task {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

func printBanner(width int) {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ui.Gold).
		Width(width - 2).
		Align(lipgloss.Center)
	ui.Puts("")
	ui.Puts(box.Render(ui.Title.Render(ui.IconTarget+"TASK PRIORITY SCORER") + "\n" +
		ui.Muted.Render("urgency · importance · deadline · effort")))
	ui.Puts("")
}

func printFooter(width int, now time.Time) {
	ui.Puts("")
	ui.Rule(width)
	ui.Ok("Task scoring complete!")
	ui.Tip(tips.Daily(now))
	ui.Puts("")
}
