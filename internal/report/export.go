package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/rnwolfe/prio/internal/task"
)

// ErrExport is returned when results cannot be written.
var ErrExport = errors.New("export failed")

// Snapshot is the exported result of one scoring run.
type Snapshot struct {
	ScoredAt      string          `json:"scored_at"`
	RunID         string          `json:"run_id"`
	ReferenceDate string          `json:"reference_date"`
	TotalTasks    int             `json:"total_tasks"`
	Algorithm     scoring.Weights `json:"algorithm"`
	Tasks         []task.Task     `json:"tasks"`
}

// NewSnapshot builds a snapshot of ranked tasks. scoredAt is when the run
// happened; reference is the date deadlines were measured against.
func NewSnapshot(ranked []task.Task, w scoring.Weights, scoredAt, reference time.Time) Snapshot {
	if ranked == nil {
		ranked = []task.Task{}
	}
	return Snapshot{
		ScoredAt:      scoredAt.Format(time.RFC3339),
		RunID:         uuid.New().String(),
		ReferenceDate: reference.Format(task.DateLayout),
		TotalTasks:    len(ranked),
		Algorithm:     w,
		Tasks:         ranked,
	}
}

// Export writes snap to path as indented JSON. The file is replaced
// atomically so a failed write never leaves a partial export behind.
func Export(path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding: %v", ErrExport, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".prio-export-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing %s: %v", ErrExport, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrExport, path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}
