package report

import (
	"errors"
	"fmt"

	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/rnwolfe/prio/internal/ui"
)

const (
	statsKeyWidth   = 25
	statsValueWidth = 15
)

// Stats prints the statistics summary in a two-column layout. An empty
// collection prints a "no data" message instead.
func (r *Renderer) Stats(st scoring.Stats, err error) {
	if errors.Is(err, scoring.ErrEmptyCollection) {
		fmt.Fprintln(r.Out)
		fmt.Fprintln(r.Out, ui.Muted.Render("  "+ui.IconDot+" No tasks to analyze."))
		fmt.Fprintln(r.Out)
		return
	}
	if err != nil {
		fmt.Fprintln(r.Out, ui.Error.Render("  "+ui.IconError+err.Error()))
		return
	}

	r.section(ui.IconStats + "STATISTICS")

	rows := [][4]string{
		{"Total Tasks:", fmt.Sprintf("%d", st.Total), "High Priority (≥7.0):", fmt.Sprintf("%d", st.High)},
		{"Average Score:", FormatScore(st.AverageScore), "Medium Priority (4-7):", fmt.Sprintf("%d", st.Medium)},
		{"Highest Score:", FormatScore(st.HighestScore), "Low Priority (<4.0):", fmt.Sprintf("%d", st.Low)},
		{"Lowest Score:", FormatScore(st.LowestScore), "Average Urgency:", FormatScore(st.AverageUrgency)},
	}
	for _, row := range rows {
		fmt.Fprintln(r.Out, "  "+
			pad(ui.KeyStyle.Render(row[0]), statsKeyWidth)+
			pad(ui.ValueStyle.Render(row[1]), statsValueWidth)+
			pad(ui.KeyStyle.Render(row[2]), statsKeyWidth)+
			ui.ValueStyle.Render(row[3]))
	}
	fmt.Fprintln(r.Out)
}
