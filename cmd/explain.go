package cmd

import (
	"fmt"
	"strings"

	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/rnwolfe/prio/internal/ui"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Describe the scoring formula and active weights",
	Args:  cobra.NoArgs,
	RunE:  runExplain,
}

// curveBands lists the deadline curve as (label, days) pairs; days is a
// representative value inside the band.
var curveBands = []struct {
	label string
	days  int
}{
	{"overdue or due today", 0},
	{"tomorrow", 1},
	{"2-3 days", 3},
	{"4-7 days", 7},
	{"8-14 days", 14},
	{"15-30 days", 30},
	{"more than 30 days", 31},
}

func explainMarkdown(w scoring.Weights) string {
	var b strings.Builder
	b.WriteString("# How prio scores a task\n\n")
	b.WriteString("Each task gets a score from about 0 to 10:\n\n")
	fmt.Fprintf(&b, "    score = urgency×%g + importance×%g + deadline×%g + (10 − effort)×%g\n\n",
		w.Urgency, w.Importance, w.Deadline, w.Effort)
	b.WriteString("The result is rounded to two decimals. Low-effort tasks get a boost.\n\n")

	b.WriteString("## Weights\n\n")
	b.WriteString("| factor | weight |\n|---|---|\n")
	fmt.Fprintf(&b, "| urgency | %g |\n", w.Urgency)
	fmt.Fprintf(&b, "| importance | %g |\n", w.Importance)
	fmt.Fprintf(&b, "| deadline | %g |\n", w.Deadline)
	fmt.Fprintf(&b, "| effort | %g |\n\n", w.Effort)

	b.WriteString("## Deadline factor\n\n")
	b.WriteString("| due | factor |\n|---|---|\n")
	for _, band := range curveBands {
		fmt.Fprintf(&b, "| %s | %g |\n", band.label, scoring.FactorForDays(band.days))
	}
	fmt.Fprintf(&b, "| unreadable date | %g |\n\n", scoring.DefaultDeadlineFactor)

	b.WriteString("## Buckets\n\n")
	fmt.Fprintf(&b, "- **high**: score ≥ %g\n", scoring.HighThreshold)
	fmt.Fprintf(&b, "- **medium**: %g ≤ score < %g\n", scoring.MediumThreshold, scoring.HighThreshold)
	fmt.Fprintf(&b, "- **low**: score < %g\n\n", scoring.MediumThreshold)

	b.WriteString("Override weights in the `[scoring]` section of config.toml; they must sum to 1.\n")
	return b.String()
}

func runExplain(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, err := weightsFromConfig(cfg)
	if err != nil {
		return err
	}
	color := cfg.Display.ColorEnabled() && !flagNoColor
	ui.Puts(ui.RenderMarkdown(explainMarkdown(w), color))
	return nil
}
