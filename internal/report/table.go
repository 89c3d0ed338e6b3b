package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rnwolfe/prio/internal/task"
	"github.com/rnwolfe/prio/internal/ui"
)

// Renderer prints ranked tasks and statistics to the console.
type Renderer struct {
	Out       io.Writer
	Now       time.Time
	NameWidth int // task names longer than this are truncated
	Width     int // width of section rules
}

// NewRenderer returns a Renderer with the default widths.
func NewRenderer(out io.Writer, now time.Time) *Renderer {
	return &Renderer{
		Out:       out,
		Now:       now,
		NameWidth: 32,
		Width:     TableWidth,
	}
}

func (r *Renderer) nameColumn() int {
	if r.NameWidth+3 > ColWidthName {
		return r.NameWidth + 3
	}
	return ColWidthName
}

func (r *Renderer) section(title string) {
	rule := ui.Muted.Render(strings.Repeat("─", r.Width))
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintln(r.Out, ui.Title.Render("  "+title))
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintln(r.Out)
}

// Table prints tasks, already ranked, as a numbered table. top > 0 selects
// the "top N" heading; the caller is responsible for slicing.
func (r *Renderer) Table(tasks []task.Task, top int) {
	if top > 0 {
		r.section(fmt.Sprintf("%sTOP %d PRIORITY TASKS", ui.IconTarget, top))
	} else {
		r.section(ui.IconChart + "ALL TASKS (SORTED BY PRIORITY)")
	}

	if len(tasks) == 0 {
		fmt.Fprintln(r.Out, ui.Muted.Render("  No tasks to show."))
		fmt.Fprintln(r.Out)
		return
	}

	nameCol := r.nameColumn()
	header := "  " +
		pad("Rank", ColWidthRank) +
		pad("Score", ColWidthScore) +
		pad("Task Name", nameCol) +
		pad("Urgency", ColWidthUrgency) +
		pad("Importance", ColWidthImportance) +
		pad("Deadline", ColWidthDeadline)
	fmt.Fprintln(r.Out, ui.KeyStyle.Render(header))
	fmt.Fprintln(r.Out, ui.Muted.Render("  "+
		strings.Repeat("─", ColWidthRank)+
		strings.Repeat("─", ColWidthScore)+
		strings.Repeat("─", nameCol)+
		strings.Repeat("─", ColWidthUrgency)+
		strings.Repeat("─", ColWidthImportance)+
		strings.Repeat("─", ColWidthDeadline)))

	for i, t := range tasks {
		fmt.Fprintln(r.Out, r.row(i+1, t, nameCol))
	}
	fmt.Fprintln(r.Out)
}

func (r *Renderer) row(rank int, t task.Task, nameCol int) string {
	score := ScoreIndicator(t.Score) + " " + scoreStyle(t.Score).Render(FormatScore(t.Score))
	deadline := deadlineStyle(t.Deadline, r.Now).Render(DeadlineLabel(t.Deadline, r.Now))

	return "  " +
		pad(ui.Muted.Render(fmt.Sprintf("#%d", rank)), ColWidthRank) +
		pad(score, ColWidthScore) +
		pad(TruncateName(t.Name, r.NameWidth), nameCol) +
		pad(fmt.Sprintf("%d", t.Urgency), ColWidthUrgency) +
		pad(fmt.Sprintf("%d", t.Importance), ColWidthImportance) +
		deadline
}
