package scoring

import (
	"fmt"
	"sort"

	"github.com/rnwolfe/prio/internal/task"
)

// Order is the direction tasks are ranked in.
type Order string

const (
	Descending Order = "desc"
	Ascending  Order = "asc"
)

// ParseOrder accepts "desc"/"asc" (and the long forms).
func ParseOrder(s string) (Order, error) {
	switch s {
	case "desc", "descending", "":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	}
	return "", fmt.Errorf("invalid order %q (want asc or desc)", s)
}

// Rank returns a copy of tasks sorted by score. Tasks with equal scores
// keep their input order.
func Rank(tasks []task.Task, order Order) []task.Task {
	out := make([]task.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if order == Ascending {
			return out[i].Score < out[j].Score
		}
		return out[i].Score > out[j].Score
	})
	return out
}

// Top returns the n highest-scoring tasks. n larger than the collection
// returns everything ranked; n <= 0 returns an empty slice.
func Top(tasks []task.Task, n int) []task.Task {
	if n <= 0 {
		return []task.Task{}
	}
	ranked := Rank(tasks, Descending)
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
