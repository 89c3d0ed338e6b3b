package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/rnwolfe/prio/internal/task"
)

// Default weights. They sum to 1.0.
const (
	UrgencyWeight    = 0.4
	ImportanceWeight = 0.3
	DeadlineWeight   = 0.2
	EffortWeight     = 0.1
)

// weightTolerance bounds float error when checking that weights sum to 1.
const weightTolerance = 1e-9

// Weights holds the multipliers for each scoring factor.
type Weights struct {
	Urgency    float64 `json:"urgency_weight"`
	Importance float64 `json:"importance_weight"`
	Deadline   float64 `json:"deadline_weight"`
	Effort     float64 `json:"effort_weight"`
}

// DefaultWeights returns the standard 0.4/0.3/0.2/0.1 split.
func DefaultWeights() Weights {
	return Weights{
		Urgency:    UrgencyWeight,
		Importance: ImportanceWeight,
		Deadline:   DeadlineWeight,
		Effort:     EffortWeight,
	}
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Urgency + w.Importance + w.Deadline + w.Effort
}

// Validate reports whether w is usable: no negative weight, total of 1.0.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"urgency":    w.Urgency,
		"importance": w.Importance,
		"deadline":   w.Deadline,
		"effort":     w.Effort,
	} {
		if v < 0 {
			return fmt.Errorf("%s weight must not be negative, got %v", name, v)
		}
	}
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", w.Sum())
	}
	return nil
}

// Warning is a recovered, per-task problem found while scoring.
type Warning struct {
	Task string
	Err  error
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s: %v", w.Task, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}

// Breakdown is the weighted contribution of each factor to a score.
type Breakdown struct {
	Urgency    float64
	Importance float64
	Deadline   float64
	Effort     float64

	DeadlineFactor   float64
	EffortEfficiency float64
}

// Total is the unrounded score.
func (b Breakdown) Total() float64 {
	return b.Urgency + b.Importance + b.Deadline + b.Effort
}

// Scorer computes task scores against a fixed reference date.
type Scorer struct {
	Weights Weights
	Now     time.Time
}

// NewScorer returns a Scorer using w, evaluating deadlines relative to now.
func NewScorer(w Weights, now time.Time) *Scorer {
	return &Scorer{Weights: w, Now: now}
}

// Breakdown computes the weighted components of t's score. The returned
// error, if any, wraps ErrInvalidDate and the default deadline factor has
// already been applied.
func (s *Scorer) Breakdown(t task.Task) (Breakdown, error) {
	factor, err := DeadlineFactor(t.Deadline, s.Now)
	eff := EffortEfficiency(t.Effort)
	return Breakdown{
		Urgency:          float64(t.Urgency) * s.Weights.Urgency,
		Importance:       float64(t.Importance) * s.Weights.Importance,
		Deadline:         factor * s.Weights.Deadline,
		Effort:           eff * s.Weights.Effort,
		DeadlineFactor:   factor,
		EffortEfficiency: eff,
	}, err
}

// Score returns a copy of t with Score set. A malformed deadline never
// fails scoring; it is reported as a Warning instead.
func (s *Scorer) Score(t task.Task) (task.Task, *Warning) {
	b, err := s.Breakdown(t)
	t.Score = Round2(b.Total())
	if err != nil {
		return t, &Warning{Task: t.Name, Err: err}
	}
	return t, nil
}

// ScoreAll scores every task independently and returns them in input
// order. The input slice is not modified.
func (s *Scorer) ScoreAll(tasks []task.Task) ([]task.Task, []Warning) {
	out := make([]task.Task, len(tasks))
	var warnings []Warning
	for i, t := range tasks {
		scored, w := s.Score(t)
		out[i] = scored
		if w != nil {
			warnings = append(warnings, *w)
		}
	}
	return out, warnings
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
