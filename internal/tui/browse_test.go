package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/rnwolfe/prio/internal/task"
)

var refTime = time.Date(2026, 2, 24, 10, 0, 0, 0, time.UTC)

func makeEntries(t *testing.T) []Entry {
	t.Helper()
	s := scoring.NewScorer(scoring.DefaultWeights(), refTime)
	scored, _ := s.ScoreAll([]task.Task{
		{Name: "write report", Urgency: 5, Importance: 5, Effort: 5, Deadline: "2026-03-10"},
		{Name: "fix outage", Urgency: 10, Importance: 10, Effort: 2, Deadline: "2026-02-24"},
		{Name: "tidy desk", Urgency: 1, Importance: 1, Effort: 1, Deadline: "2026-06-01"},
	})
	return NewEntries(s, scored)
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(m *BrowseModel, s string) {
	for _, r := range s {
		m.Update(key(r))
	}
}

func TestNewEntries_RankedWithBreakdown(t *testing.T) {
	entries := makeEntries(t)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Task.Name != "fix outage" || entries[0].Rank != 1 {
		t.Fatalf("first entry = %+v", entries[0])
	}
	if entries[2].Task.Name != "tidy desk" || entries[2].Rank != 3 {
		t.Fatalf("last entry = %+v", entries[2])
	}
	if entries[0].Breakdown.DeadlineFactor != 10 {
		t.Errorf("due-today breakdown factor = %v", entries[0].Breakdown.DeadlineFactor)
	}
}

func TestBrowseModel_Navigate(t *testing.T) {
	m := NewBrowseModel(makeEntries(t), refTime)

	m.Update(key('j'))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Fatalf("cursor should be 2, got %d", m.cursor)
	}
	m.Update(key('j'))
	if m.cursor != 2 {
		t.Fatalf("cursor should clamp at 2, got %d", m.cursor)
	}
	m.Update(key('g'))
	if m.cursor != 0 {
		t.Fatalf("g should jump to top, got %d", m.cursor)
	}
	m.Update(key('G'))
	if m.cursor != 2 {
		t.Fatalf("G should jump to bottom, got %d", m.cursor)
	}
	m.Update(key('k'))
	if e, _ := m.Selected(); e.Task.Name != "write report" {
		t.Fatalf("selected = %q", e.Task.Name)
	}
}

func TestBrowseModel_Filter(t *testing.T) {
	m := NewBrowseModel(makeEntries(t), refTime)

	m.Update(key('/'))
	if m.mode != browseModeFilter {
		t.Fatal("/ should enter filter mode")
	}
	typeString(m, "desk")
	if len(m.filtered) != 1 || m.filtered[0].Task.Name != "tidy desk" {
		t.Fatalf("filter should leave only tidy desk, got %d entries", len(m.filtered))
	}
	if m.filtered[0].Rank != 3 {
		t.Errorf("filtered entry should keep its overall rank, got %d", m.filtered[0].Rank)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.filter != "des" {
		t.Errorf("backspace should trim filter, got %q", m.filter)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != browseModeNormal || m.filter != "" || len(m.filtered) != 3 {
		t.Fatalf("esc should clear filter: mode=%d filter=%q shown=%d", m.mode, m.filter, len(m.filtered))
	}
}

func TestBrowseModel_FilterNoMatches(t *testing.T) {
	m := NewBrowseModel(makeEntries(t), refTime)
	m.Update(key('/'))
	typeString(m, "zzz")
	if _, ok := m.Selected(); ok {
		t.Fatal("nothing should be selected")
	}
	if !strings.Contains(m.View(), "No matches") {
		t.Error("view should explain there are no matches")
	}
}

func TestBrowseModel_ToggleOrder(t *testing.T) {
	m := NewBrowseModel(makeEntries(t), refTime)
	m.Update(key('o'))
	if m.filtered[0].Task.Name != "tidy desk" {
		t.Fatalf("ascending order should put lowest first, got %q", m.filtered[0].Task.Name)
	}
	m.Update(key('o'))
	if m.filtered[0].Task.Name != "fix outage" {
		t.Fatalf("descending order should put highest first, got %q", m.filtered[0].Task.Name)
	}
}

func TestBrowseModel_DetailView(t *testing.T) {
	m := NewBrowseModel(makeEntries(t), refTime)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.detail {
		t.Fatal("enter should open details")
	}
	view := m.View()
	for _, want := range []string{"urgency", "importance", "deadline", "effort", "2026-02-24", "high bucket"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestBrowseModel_Quit(t *testing.T) {
	m := NewBrowseModel(makeEntries(t), refTime)
	_, cmd := m.Update(key('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if !m.quitting {
		t.Fatal("model should be quitting")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestBrowseModel_WindowResize(t *testing.T) {
	m := NewBrowseModel(makeEntries(t), refTime)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Fatalf("size = %dx%d", m.width, m.height)
	}
}
