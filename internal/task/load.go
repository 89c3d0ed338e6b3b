package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads a task file. JSON is expected unless the file ends in .toml.
//
// Records are decoded one at a time: a malformed record is skipped and
// reported in the returned warnings while the rest still load. The error
// is non-nil only when the file as a whole cannot be used, in which case
// no tasks are returned.
func Load(path string) ([]Task, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return decodeTOML(data)
	}
	return decodeJSON(data)
}

type jsonFile struct {
	Tasks []json.RawMessage `json:"tasks"`
}

// jsonRecord mirrors Task but keeps the deadline raw, so a deadline of the
// wrong JSON type still reaches scoring and gets the neutral factor.
type jsonRecord struct {
	Name       string          `json:"name"`
	Urgency    int             `json:"urgency"`
	Importance int             `json:"importance"`
	Effort     int             `json:"effort"`
	Deadline   json.RawMessage `json:"deadline"`
	Status     string          `json:"status"`
	Priority   string          `json:"priority"`
}

func decodeJSON(data []byte) ([]Task, []error, error) {
	var f jsonFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var tasks []Task
	var warnings []error
	for i, raw := range f.Tasks {
		var rec jsonRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			warnings = append(warnings, fmt.Errorf("%w: record %d: %v", ErrParse, i+1, err))
			continue
		}
		t := Task{
			Name:       rec.Name,
			Urgency:    rec.Urgency,
			Importance: rec.Importance,
			Effort:     rec.Effort,
			Deadline:   jsonDeadlineText(rec.Deadline),
			Status:     rec.Status,
			Priority:   rec.Priority,
		}
		if err := t.validate(); err != nil {
			warnings = append(warnings, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		tasks = append(tasks, t.withDefaults())
	}
	return tasks, warnings, nil
}

type tomlFile struct {
	Tasks []toml.Primitive `toml:"tasks"`
}

// tomlRecord mirrors Task but accepts a bare TOML date for the deadline.
type tomlRecord struct {
	Name       string `toml:"name"`
	Urgency    int    `toml:"urgency"`
	Importance int    `toml:"importance"`
	Effort     int    `toml:"effort"`
	Deadline   any    `toml:"deadline"`
	Status     string `toml:"status"`
	Priority   string `toml:"priority"`
}

func decodeTOML(data []byte) ([]Task, []error, error) {
	var f tomlFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var tasks []Task
	var warnings []error
	for i, prim := range f.Tasks {
		var rec tomlRecord
		if err := md.PrimitiveDecode(prim, &rec); err != nil {
			warnings = append(warnings, fmt.Errorf("%w: record %d: %v", ErrParse, i+1, err))
			continue
		}
		t := Task{
			Name:       rec.Name,
			Urgency:    rec.Urgency,
			Importance: rec.Importance,
			Effort:     rec.Effort,
			Deadline:   deadlineText(rec.Deadline),
			Status:     rec.Status,
			Priority:   rec.Priority,
		}
		if err := t.validate(); err != nil {
			warnings = append(warnings, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		tasks = append(tasks, t.withDefaults())
	}
	return tasks, warnings, nil
}

// jsonDeadlineText returns a string deadline unquoted and any other JSON
// value as its literal text.
func jsonDeadlineText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	return text
}

func deadlineText(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return d
	case time.Time:
		return d.Format(DateLayout)
	default:
		return fmt.Sprint(d)
	}
}
