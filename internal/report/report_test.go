package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/rnwolfe/prio/internal/task"
	"github.com/rnwolfe/prio/internal/ui"
)

var baseTime = time.Date(2026, 2, 24, 9, 30, 0, 0, time.UTC)

func dateIn(days int) string {
	return baseTime.AddDate(0, 0, days).Format(task.DateLayout)
}

func newRenderer(t *testing.T) (*Renderer, *bytes.Buffer) {
	t.Helper()
	ui.DisableColor()
	var buf bytes.Buffer
	return NewRenderer(&buf, baseTime), &buf
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"short", 32, "short"},
		{strings.Repeat("a", 32), 32, strings.Repeat("a", 32)},
		{strings.Repeat("a", 33), 32, strings.Repeat("a", 29) + "..."},
		{"Refactor authentication module", 10, "Refacto..."},
	}
	for _, tc := range tests {
		got := TruncateName(tc.name, tc.width)
		if got != tc.want {
			t.Errorf("TruncateName(%q, %d) = %q, want %q", tc.name, tc.width, got, tc.want)
		}
		if lipgloss.Width(got) > tc.width {
			t.Errorf("TruncateName(%q, %d) is %d cells wide", tc.name, tc.width, lipgloss.Width(got))
		}
	}
}

func TestScoreIndicator(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{9.9, ui.IconRed},
		{8.0, ui.IconRed},
		{7.99, ui.IconOrange},
		{6.0, ui.IconOrange},
		{4.0, ui.IconYellow},
		{3.99, ui.IconGreen},
	}
	for _, tc := range tests {
		if got := ScoreIndicator(tc.score); got != tc.want {
			t.Errorf("ScoreIndicator(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestDeadlineLabel(t *testing.T) {
	tests := []struct {
		deadline string
		want     string
	}{
		{dateIn(-3), "OVERDUE"},
		{dateIn(0), "TODAY"},
		{dateIn(1), "Tomorrow"},
		{dateIn(3), "3 days"},
		{dateIn(6), "6 days"},
		{dateIn(21), "21 days"},
		{"whenever", "Unknown"},
	}
	for _, tc := range tests {
		got := DeadlineLabel(tc.deadline, baseTime)
		if !strings.Contains(got, tc.want) {
			t.Errorf("DeadlineLabel(%q) = %q, want it to contain %q", tc.deadline, got, tc.want)
		}
	}
}

func TestTable_RendersRankedRows(t *testing.T) {
	r, buf := newRenderer(t)
	tasks := []task.Task{
		{Name: "Fix production outage", Urgency: 10, Importance: 10, Deadline: dateIn(0), Score: 9.9},
		{Name: strings.Repeat("x", 40), Urgency: 2, Importance: 3, Deadline: dateIn(45), Score: 2.1},
	}

	r.Table(tasks, 0)
	out := buf.String()

	for _, want := range []string{
		"ALL TASKS (SORTED BY PRIORITY)",
		"Rank", "Score", "Task Name", "Urgency", "Importance", "Deadline",
		"#1", "9.90", "Fix production outage", "TODAY",
		"#2", "2.10", strings.Repeat("x", 29) + "...", "45 days",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, strings.Repeat("x", 33)) {
		t.Error("long name should be truncated")
	}
	if strings.Index(out, "#1") > strings.Index(out, "#2") {
		t.Error("rows should appear in the given order")
	}
}

func TestTable_TopHeading(t *testing.T) {
	r, buf := newRenderer(t)
	r.Table([]task.Task{{Name: "one", Deadline: dateIn(2), Score: 5}}, 3)
	if !strings.Contains(buf.String(), "TOP 3 PRIORITY TASKS") {
		t.Errorf("missing top heading:\n%s", buf.String())
	}
}

func TestTable_Empty(t *testing.T) {
	r, buf := newRenderer(t)
	r.Table(nil, 0)
	if !strings.Contains(buf.String(), "No tasks to show.") {
		t.Errorf("expected empty message:\n%s", buf.String())
	}
}

func TestTable_WideNameColumn(t *testing.T) {
	r, buf := newRenderer(t)
	r.NameWidth = 50
	name := strings.Repeat("n", 48)
	r.Table([]task.Task{{Name: name, Deadline: dateIn(5), Score: 5}}, 0)
	if !strings.Contains(buf.String(), name) {
		t.Errorf("name within configured width should not be truncated or wrapped:\n%s", buf.String())
	}
}

func TestStats_Block(t *testing.T) {
	r, buf := newRenderer(t)
	st := scoring.Stats{
		Total: 4, AverageScore: 5.5, HighestScore: 9.9, LowestScore: 0.9,
		AverageUrgency: 6.25, High: 2, Medium: 1, Low: 1,
	}

	r.Stats(st, nil)
	out := buf.String()
	for _, want := range []string{
		"STATISTICS", "Total Tasks:", "4", "Average Score:", "5.50",
		"Highest Score:", "9.90", "Lowest Score:", "0.90",
		"High Priority (≥7.0):", "Medium Priority (4-7):", "Low Priority (<4.0):",
		"Average Urgency:", "6.25",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stats block missing %q:\n%s", want, out)
		}
	}
}

func TestStats_Empty(t *testing.T) {
	r, buf := newRenderer(t)
	r.Stats(scoring.Summarize(nil))
	out := buf.String()
	if !strings.Contains(out, "No tasks to analyze.") {
		t.Errorf("expected no-data message:\n%s", out)
	}
	if strings.Contains(out, "STATISTICS") {
		t.Error("empty collection should not print the statistics block")
	}
}

func TestExport_WritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scored.json")
	ranked := []task.Task{
		{Name: "a", Urgency: 9, Importance: 8, Effort: 2, Deadline: "2026-02-25", Status: "todo", Priority: "high", Score: 8.6},
		{Name: "b", Urgency: 1, Importance: 1, Effort: 9, Deadline: "2026-06-01", Status: "completed", Priority: "low", Score: 0.9},
	}
	scoredAt := time.Date(2026, 2, 24, 15, 4, 5, 0, time.UTC)

	snap := NewSnapshot(ranked, scoring.DefaultWeights(), scoredAt, baseTime)
	if err := Export(path, snap); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if got["scored_at"] != "2026-02-24T15:04:05Z" {
		t.Errorf("scored_at = %v", got["scored_at"])
	}
	if got["reference_date"] != "2026-02-24" {
		t.Errorf("reference_date = %v", got["reference_date"])
	}
	if got["total_tasks"] != float64(2) {
		t.Errorf("total_tasks = %v", got["total_tasks"])
	}
	if _, err := uuid.Parse(got["run_id"].(string)); err != nil {
		t.Errorf("run_id is not a UUID: %v", got["run_id"])
	}

	alg := got["algorithm"].(map[string]any)
	wantWeights := map[string]float64{
		"urgency_weight": 0.4, "importance_weight": 0.3,
		"deadline_weight": 0.2, "effort_weight": 0.1,
	}
	for k, v := range wantWeights {
		if alg[k] != v {
			t.Errorf("algorithm.%s = %v, want %v", k, alg[k], v)
		}
	}

	tasks := got["tasks"].([]any)
	first := tasks[0].(map[string]any)
	if first["name"] != "a" || first["score"] != 8.6 || first["priority"] != "high" {
		t.Errorf("first task = %v", first)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestExport_EmptyTasksIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := Export(path, NewSnapshot(nil, scoring.DefaultWeights(), baseTime, baseTime)); err != nil {
		t.Fatalf("Export: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"tasks": []`) {
		t.Errorf("expected empty tasks array:\n%s", data)
	}
}

func TestExport_UnwritableDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.json")
	err := Export(path, NewSnapshot(nil, scoring.DefaultWeights(), baseTime, baseTime))
	if !errors.Is(err, ErrExport) {
		t.Fatalf("expected ErrExport, got %v", err)
	}
}
