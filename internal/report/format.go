package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/rnwolfe/prio/internal/ui"
)

// Column display widths for the ranked table. Use with
// lipgloss.NewStyle().Width(N).Render() for ANSI-safe padding.
const (
	ColWidthRank       = 6
	ColWidthScore      = 10 // indicator (2 cells) + space + score
	ColWidthName       = 35
	ColWidthUrgency    = 10
	ColWidthImportance = 12
	ColWidthDeadline   = 15

	// TableWidth is the width of rules framing each section.
	TableWidth = 100
)

// Ellipsis marks a truncated task name.
const Ellipsis = "..."

// TruncateName shortens name to at most width display cells.
func TruncateName(name string, width int) string {
	if width <= len(Ellipsis) {
		width = len(Ellipsis) + 1
	}
	return runewidth.Truncate(name, width, Ellipsis)
}

// ScoreIndicator returns the heat icon for a score.
func ScoreIndicator(score float64) string {
	switch {
	case score >= 8.0:
		return ui.IconRed
	case score >= 6.0:
		return ui.IconOrange
	case score >= 4.0:
		return ui.IconYellow
	default:
		return ui.IconGreen
	}
}

// scoreStyle matches ScoreIndicator's bands.
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 8.0:
		return ui.ScoreCritical
	case score >= 6.0:
		return ui.ScoreHigh
	case score >= 4.0:
		return ui.ScoreMedium
	default:
		return ui.ScoreLow
	}
}

// FormatScore renders a score with two decimals.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// DeadlineLabel describes how close deadline is relative to now's date.
func DeadlineLabel(deadline string, now time.Time) string {
	days, err := scoring.DaysUntil(deadline, now)
	if err != nil {
		return "   Unknown"
	}
	switch {
	case days < 0:
		return ui.IconWarn + "OVERDUE"
	case days == 0:
		return ui.IconRed + " TODAY"
	case days == 1:
		return ui.IconOrange + " Tomorrow"
	case days <= 3:
		return fmt.Sprintf("%s %d days", ui.IconYellow, days)
	case days <= 7:
		return fmt.Sprintf("%s %d days", ui.IconGreen, days)
	default:
		return fmt.Sprintf("   %d days", days)
	}
}

// deadlineStyle colors a deadline label by proximity.
func deadlineStyle(deadline string, now time.Time) lipgloss.Style {
	days, err := scoring.DaysUntil(deadline, now)
	switch {
	case err != nil:
		return ui.Muted
	case days <= 0:
		return ui.Error
	case days <= 3:
		return ui.Warning
	default:
		return lipgloss.NewStyle()
	}
}

// pad renders s padded to width display cells.
func pad(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
