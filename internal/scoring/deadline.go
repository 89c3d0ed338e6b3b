package scoring

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rnwolfe/prio/internal/task"
)

// ErrInvalidDate is reported when a deadline is not a YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid deadline")

// DefaultDeadlineFactor is used when a deadline cannot be parsed.
const DefaultDeadlineFactor = 5.0

// startOfDay returns midnight of t's calendar date in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DaysUntil returns whole calendar days from now's date to the deadline.
// Both sides are truncated to midnight in now's location, so the time of
// day at which scoring runs never changes the result. Negative means overdue.
func DaysUntil(deadline string, now time.Time) (int, error) {
	d, err := time.ParseInLocation(task.ParseLayout, strings.TrimSpace(deadline), now.Location())
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidDate, deadline)
	}
	today := startOfDay(now, now.Location())
	dueDay := startOfDay(d, now.Location())
	// Rounding absorbs 23h/25h days around DST changes.
	return int(math.Round(dueDay.Sub(today).Hours() / 24)), nil
}

// FactorForDays maps days remaining to the 1-10 deadline urgency curve.
func FactorForDays(days int) float64 {
	switch {
	case days <= 0: // overdue or due today
		return 10.0
	case days == 1:
		return 9.0
	case days <= 3:
		return 8.0
	case days <= 7:
		return 6.0
	case days <= 14:
		return 4.0
	case days <= 30:
		return 2.0
	default:
		return 1.0
	}
}

// DeadlineFactor returns the deadline contribution for a task due on
// deadline, evaluated on now's date. An unparseable deadline yields
// DefaultDeadlineFactor together with an error wrapping ErrInvalidDate;
// the factor is still usable.
func DeadlineFactor(deadline string, now time.Time) (float64, error) {
	days, err := DaysUntil(deadline, now)
	if err != nil {
		return DefaultDeadlineFactor, err
	}
	return FactorForDays(days), nil
}

// EffortEfficiency inverts the effort scale so quick wins score higher.
// Effort is not clamped: values outside 1-10 produce efficiencies outside 0-9.
func EffortEfficiency(effort int) float64 {
	return float64(10 - effort)
}
