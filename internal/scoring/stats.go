package scoring

import (
	"errors"

	"github.com/rnwolfe/prio/internal/task"
)

// ErrEmptyCollection is returned when statistics are requested for no tasks.
var ErrEmptyCollection = errors.New("no tasks to analyze")

// Bucket thresholds. High is score >= HighThreshold, medium is
// MediumThreshold <= score < HighThreshold, low is everything below.
const (
	HighThreshold   = 7.0
	MediumThreshold = 4.0
)

// Bucket names.
const (
	BucketHigh   = "high"
	BucketMedium = "medium"
	BucketLow    = "low"
)

// Stats summarizes a scored collection.
type Stats struct {
	Total          int     `json:"total_tasks"`
	AverageScore   float64 `json:"average_score"`
	HighestScore   float64 `json:"highest_score"`
	LowestScore    float64 `json:"lowest_score"`
	AverageUrgency float64 `json:"average_urgency"`
	High           int     `json:"high_priority_tasks"`
	Medium         int     `json:"medium_priority_tasks"`
	Low            int     `json:"low_priority_tasks"`
}

// BucketFor classifies a single score.
func BucketFor(score float64) string {
	switch {
	case score >= HighThreshold:
		return BucketHigh
	case score >= MediumThreshold:
		return BucketMedium
	default:
		return BucketLow
	}
}

// Summarize computes aggregate metrics over scored tasks.
func Summarize(tasks []task.Task) (Stats, error) {
	if len(tasks) == 0 {
		return Stats{}, ErrEmptyCollection
	}

	st := Stats{
		Total:        len(tasks),
		HighestScore: tasks[0].Score,
		LowestScore:  tasks[0].Score,
	}
	var scoreSum float64
	var urgencySum int
	for _, t := range tasks {
		scoreSum += t.Score
		urgencySum += t.Urgency
		if t.Score > st.HighestScore {
			st.HighestScore = t.Score
		}
		if t.Score < st.LowestScore {
			st.LowestScore = t.Score
		}
		switch BucketFor(t.Score) {
		case BucketHigh:
			st.High++
		case BucketMedium:
			st.Medium++
		default:
			st.Low++
		}
	}

	n := float64(len(tasks))
	st.AverageScore = Round2(scoreSum / n)
	st.AverageUrgency = Round2(float64(urgencySum) / n)
	return st, nil
}
