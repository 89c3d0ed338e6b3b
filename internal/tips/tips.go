// Package tips provides the rotating hints printed after a scoring run.
package tips

import "time"

var all = []string{
	"`prio top 5` to see only the five tasks that matter most right now.",
	"`prio --today 2026-03-01` to score against a future date and plan ahead.",
	"`prio --task \"Call bank|8|6|1|2026-03-02\"` to score a one-off task without editing the file.",
	"`prio browse` to page through tasks and open each score breakdown.",
	"`prio explain` to see the formula and the weights in effect.",
	"`prio config set scoring.effort_weight 0.2` to favor quick wins (keep the weights summing to 1).",
	"`prio stats` to check how many tasks sit in the high bucket.",
	"`prio --asc` to list the lowest-priority tasks first, good candidates to drop.",
	"`prio export --out week.json` to keep a dated snapshot of your ranking.",
	"a task file ending in .toml is read as TOML, with [[tasks]] tables.",
	"`prio config set display.name_width 48` if task names are getting cut off.",
}

// All returns every tip.
func All() []string {
	return all
}

// Daily returns the tip for t's calendar day; it is stable within a day.
func Daily(t time.Time) string {
	return all[t.YearDay()%len(all)]
}
