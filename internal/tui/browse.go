package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rnwolfe/prio/internal/report"
	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/rnwolfe/prio/internal/task"
	"github.com/rnwolfe/prio/internal/ui"
)

// Entry is one ranked task together with its score breakdown.
type Entry struct {
	Rank      int
	Task      task.Task
	Breakdown scoring.Breakdown
}

// NewEntries ranks scored tasks and attaches each one's breakdown.
func NewEntries(s *scoring.Scorer, scored []task.Task) []Entry {
	ranked := scoring.Rank(scored, scoring.Descending)
	entries := make([]Entry, len(ranked))
	for i, t := range ranked {
		b, _ := s.Breakdown(t) // invalid deadlines were already reported at scoring time
		entries[i] = Entry{Rank: i + 1, Task: t, Breakdown: b}
	}
	return entries
}

// IsTTY returns true when stdin is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

type browseMode int

const (
	browseModeNormal browseMode = iota
	browseModeFilter
)

// BrowseModel is a read-only Bubbletea view over a ranked task list.
type BrowseModel struct {
	entries  []Entry
	filtered []Entry
	cursor   int
	filter   string
	mode     browseMode
	detail   bool
	order    scoring.Order
	now      time.Time

	width  int
	height int

	quitting bool
}

// NewBrowseModel creates a model over entries, which must already be ranked.
func NewBrowseModel(entries []Entry, now time.Time) *BrowseModel {
	m := &BrowseModel{
		entries: entries,
		order:   scoring.Descending,
		now:     now,
		width:   80,
		height:  24,
	}
	m.applyFilter()
	return m
}

// RunBrowse launches the interactive browser and blocks until the user quits.
func RunBrowse(entries []Entry, now time.Time) error {
	prog := tea.NewProgram(NewBrowseModel(entries, now), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("browse tui: %w", err)
	}
	return nil
}

func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == browseModeFilter {
			return m.handleFilterKey(msg)
		}
		return m.handleNormalKey(msg)
	}
	return m, nil
}

func (m *BrowseModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "g":
		m.cursor = 0

	case "G":
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		}

	case "enter", " ":
		m.detail = !m.detail

	case "o":
		if m.order == scoring.Descending {
			m.order = scoring.Ascending
		} else {
			m.order = scoring.Descending
		}
		m.applyFilter()
		m.cursor = 0

	case "/":
		m.mode = browseModeFilter
		m.filter = ""
		m.applyFilter()
		m.cursor = 0
	}
	return m, nil
}

func (m *BrowseModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = browseModeNormal
		m.filter = ""
		m.applyFilter()
		m.cursor = 0

	case "enter":
		m.mode = browseModeNormal

	case "backspace":
		if len(m.filter) > 0 {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
			m.cursor = 0
		}

	default:
		if len(msg.Runes) > 0 {
			m.filter += string(msg.Runes)
			m.applyFilter()
			m.cursor = 0
		}
	}
	return m, nil
}

// applyFilter narrows entries by name and orders them; rank numbers keep
// their position in the full descending list.
func (m *BrowseModel) applyFilter() {
	m.filtered = m.filtered[:0]
	for _, e := range m.entries {
		if ok, _ := FuzzyMatch(m.filter, e.Task.Name); ok {
			m.filtered = append(m.filtered, e)
		}
	}
	if m.order == scoring.Ascending {
		sort.SliceStable(m.filtered, func(i, j int) bool {
			return m.filtered[i].Task.Score < m.filtered[j].Task.Score
		})
	}
}

// Selected returns the entry under the cursor.
func (m *BrowseModel) Selected() (Entry, bool) {
	if len(m.filtered) == 0 {
		return Entry{}, false
	}
	return m.filtered[m.cursor], true
}

func (m *BrowseModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	header := ui.Title.Render("  " + ui.IconTarget + "Priorities")
	if m.order == scoring.Ascending {
		header += ui.Muted.Render("  lowest first")
	}
	if m.filter != "" {
		header += ui.Muted.Render(fmt.Sprintf("  filter: %q", m.filter))
	}
	b.WriteString(header + "\n\n")

	reserved := 8
	if m.detail {
		reserved += 8
	}
	visHeight := m.height - reserved
	if visHeight < 3 {
		visHeight = 3
	}
	offset := 0
	if m.cursor >= visHeight {
		offset = m.cursor - visHeight + 1
	}

	if len(m.filtered) == 0 {
		if m.filter != "" {
			b.WriteString("  " + ui.Muted.Render("No matches. Press esc to clear filter.") + "\n")
		} else {
			b.WriteString("  " + ui.Muted.Render("No tasks loaded.") + "\n")
		}
	} else {
		end := offset + visHeight
		if end > len(m.filtered) {
			end = len(m.filtered)
		}
		for i := offset; i < end; i++ {
			b.WriteString(m.renderEntry(m.filtered[i], i == m.cursor) + "\n")
		}
	}

	if e, ok := m.Selected(); ok && m.detail {
		b.WriteString("\n" + m.renderDetail(e))
	}

	b.WriteString("\n")
	if m.mode == browseModeFilter {
		prompt := lipgloss.NewStyle().Foreground(ui.Gold).Bold(true).Render("/")
		b.WriteString("  " + prompt + " " + m.filter + "▎\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(ui.Muted.Render(fmt.Sprintf("  %d/%d shown", len(m.filtered), len(m.entries))) + "\n")
	if m.mode == browseModeFilter {
		b.WriteString(ui.Muted.Render("  esc clear · enter confirm") + "\n")
	} else {
		b.WriteString(ui.Muted.Render("  j/k move · enter details · o order · / filter · q quit") + "\n")
	}
	return b.String()
}

func (m *BrowseModel) renderEntry(e Entry, selected bool) string {
	pointer := "  "
	nameStyle := lipgloss.NewStyle()
	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		nameStyle = lipgloss.NewStyle().Foreground(ui.Gold).Bold(true)
	}

	rank := ui.Muted.Render(fmt.Sprintf("#%-3d", e.Rank))
	score := report.ScoreIndicator(e.Task.Score) + " " + report.FormatScore(e.Task.Score)
	name := nameStyle.Render(report.TruncateName(e.Task.Name, 40))
	due := ui.Muted.Render(strings.TrimSpace(report.DeadlineLabel(e.Task.Deadline, m.now)))

	return fmt.Sprintf("  %s%s %s  %s  %s", pointer, rank, score, name, due)
}

func (m *BrowseModel) renderDetail(e Entry) string {
	b := e.Breakdown
	lines := []string{
		ui.Accent.Render(e.Task.Name),
		fmt.Sprintf("urgency     %2d  → %.2f", e.Task.Urgency, b.Urgency),
		fmt.Sprintf("importance  %2d  → %.2f", e.Task.Importance, b.Importance),
		fmt.Sprintf("deadline  %4.1f  → %.2f  (%s)", b.DeadlineFactor, b.Deadline, e.Task.Deadline),
		fmt.Sprintf("effort      %2d  → %.2f  (efficiency %.0f)", e.Task.Effort, b.Effort, b.EffortEfficiency),
		ui.Muted.Render(fmt.Sprintf("status %s · priority %s · %s bucket",
			e.Task.Status, e.Task.Priority, scoring.BucketFor(e.Task.Score))),
	}
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ui.Gold).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().MarginLeft(2).Render(box) + "\n"
}
