package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Status values. Status is carried through scoring untouched.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// DefaultPriority is the label applied when an input record omits priority.
const DefaultPriority = "medium"

// DateLayout is the calendar-date format deadlines are written in.
const DateLayout = "2006-01-02"

// ParseLayout reads deadlines; month and day may omit the leading zero.
const ParseLayout = "2006-1-2"

var (
	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = errors.New("task file not found")
	// ErrParse is returned when input is structurally invalid.
	ErrParse = errors.New("invalid task data")
)

// Task is one unit of work to prioritize.
type Task struct {
	Name       string  `json:"name" toml:"name"`
	Urgency    int     `json:"urgency" toml:"urgency"`       // 1-10
	Importance int     `json:"importance" toml:"importance"` // 1-10
	Effort     int     `json:"effort" toml:"effort"`         // 1-10, estimated hours/complexity
	Deadline   string  `json:"deadline" toml:"deadline"`     // YYYY-MM-DD
	Status     string  `json:"status" toml:"status"`
	Priority   string  `json:"priority" toml:"priority"`
	Score      float64 `json:"score" toml:"-"`
}

// withDefaults fills the optional labels and drops any score supplied on input.
func (t Task) withDefaults() Task {
	if t.Status == "" {
		t.Status = StatusTodo
	}
	if t.Priority == "" {
		t.Priority = DefaultPriority
	}
	t.Score = 0
	return t
}

// validate checks the fields every record must carry. Numeric ranges are
// deliberately not enforced.
func (t Task) validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: task name is required", ErrParse)
	}
	return nil
}

// ParseInline builds a task from "name|urgency|importance|effort|deadline".
// Status and priority may follow as optional sixth and seventh fields.
func ParseInline(s string) (Task, error) {
	parts := strings.Split(s, "|")
	if len(parts) < 5 || len(parts) > 7 {
		return Task{}, fmt.Errorf("%w: %q: want name|urgency|importance|effort|deadline", ErrParse, s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	nums := make([]int, 3)
	labels := []string{"urgency", "importance", "effort"}
	for i, label := range labels {
		n, err := strconv.Atoi(parts[i+1])
		if err != nil {
			return Task{}, fmt.Errorf("%w: %q: %s must be an integer", ErrParse, s, label)
		}
		nums[i] = n
	}

	t := Task{
		Name:       parts[0],
		Urgency:    nums[0],
		Importance: nums[1],
		Effort:     nums[2],
		Deadline:   parts[4],
	}
	if len(parts) > 5 {
		t.Status = parts[5]
	}
	if len(parts) > 6 {
		t.Priority = parts[6]
	}
	if err := t.validate(); err != nil {
		return Task{}, err
	}
	return t.withDefaults(), nil
}
