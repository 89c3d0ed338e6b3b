package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/rnwolfe/prio/internal/config"
	"github.com/rnwolfe/prio/internal/report"
	"github.com/rnwolfe/prio/internal/scoring"
	"github.com/rnwolfe/prio/internal/task"
	"github.com/rnwolfe/prio/internal/ui"
	"github.com/sirupsen/logrus"
)

// session is the state shared by every command that scores tasks.
type session struct {
	cfg      *config.Config
	scorer   *scoring.Scorer
	now      time.Time // reference date for deadlines
	scoredAt time.Time // wall clock, recorded in exports
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.GetPaths().ConfigFile
}

// loadConfig reads --config when given, otherwise the XDG default.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flagConfig != "" {
		cfg, err = config.LoadFile(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Display.ColorEnabled() {
		ui.DisableColor()
	}

	w, err := weightsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	now, err := referenceTime()
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"urgency":    w.Urgency,
		"importance": w.Importance,
		"deadline":   w.Deadline,
		"effort":     w.Effort,
		"reference":  now.Format(task.DateLayout),
	}).Debug("scoring session ready")

	return &session{
		cfg:      cfg,
		scorer:   scoring.NewScorer(w, now),
		now:      now,
		scoredAt: time.Now(),
	}, nil
}

// weightsFromConfig applies [scoring] overrides to the default weights.
func weightsFromConfig(cfg *config.Config) (scoring.Weights, error) {
	w := scoring.DefaultWeights()
	sc := cfg.Scoring
	if sc.UrgencyWeight != nil {
		w.Urgency = *sc.UrgencyWeight
	}
	if sc.ImportanceWeight != nil {
		w.Importance = *sc.ImportanceWeight
	}
	if sc.DeadlineWeight != nil {
		w.Deadline = *sc.DeadlineWeight
	}
	if sc.EffortWeight != nil {
		w.Effort = *sc.EffortWeight
	}
	if err := w.Validate(); err != nil {
		return scoring.Weights{}, fmt.Errorf("config [scoring]: %w", err)
	}
	return w, nil
}

// referenceTime is --today at midnight local time, or the current time.
func referenceTime() (time.Time, error) {
	if flagToday == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation(task.ParseLayout, flagToday, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today %q (want YYYY-MM-DD)", flagToday)
	}
	return d, nil
}

// inputPath picks the positional file argument or the configured default.
func (s *session) inputPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return s.cfg.Files.Input
}

// load reads tasks from path and appends inline tasks. A missing or
// malformed file is reported and loading continues with no file tasks;
// a malformed inline task is a usage error.
func (s *session) load(path string, inline []string) ([]task.Task, error) {
	log := logger.WithField("file", path)

	tasks, warns, err := task.Load(path)
	switch {
	case errors.Is(err, task.ErrNotFound):
		ui.Err(fmt.Sprintf("Error: File '%s' not found", path))
		log.Debug(err)
	case errors.Is(err, task.ErrParse):
		ui.Err(fmt.Sprintf("Error: Invalid task data in '%s'", path))
		log.Debug(err)
	case err != nil:
		ui.Err(err.Error())
		log.Debug(err)
	default:
		ui.Ok(fmt.Sprintf("Loaded %d tasks from %s", len(tasks), path))
	}
	for _, w := range warns {
		ui.Warn("Skipped record: " + w.Error())
		log.Debug(w)
	}

	for _, raw := range inline {
		t, err := task.ParseInline(raw)
		if err != nil {
			return nil, fmt.Errorf("--task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if len(inline) > 0 {
		ui.Ok(fmt.Sprintf("Added %d inline tasks", len(inline)))
	}
	return tasks, nil
}

// score scores tasks and reports any deadline that fell back to the
// neutral factor.
func (s *session) score(tasks []task.Task) []task.Task {
	scored, warns := s.scorer.ScoreAll(tasks)
	for _, w := range warns {
		ui.Warn(fmt.Sprintf("%s: unreadable deadline, using neutral factor %.1f",
			w.Task, scoring.DefaultDeadlineFactor))
		logger.WithField("task", w.Task).Debug(w.Err)
	}
	logger.WithField("count", len(scored)).Debug("tasks scored")
	return scored
}

// rankedTasks runs the full pipeline: load, score, rank.
func (s *session) rankedTasks(args, inline []string, order scoring.Order) ([]task.Task, error) {
	tasks, err := s.load(s.inputPath(args), inline)
	if err != nil {
		return nil, err
	}
	return scoring.Rank(s.score(tasks), order), nil
}

func (s *session) renderer() *report.Renderer {
	r := report.NewRenderer(ui.Stdout(), s.now)
	r.NameWidth = s.cfg.Display.NameWidth
	if w := ui.TermWidth(report.TableWidth); w < r.Width {
		r.Width = w
	}
	return r
}

// export writes ranked tasks to path, or the configured output when path
// is empty.
func (s *session) export(ranked []task.Task, path string) (string, error) {
	if path == "" {
		path = s.cfg.Files.Output
	}
	snap := report.NewSnapshot(ranked, s.scorer.Weights, s.scoredAt, s.now)
	if err := report.Export(path, snap); err != nil {
		logger.WithField("file", path).Debug(err)
		return path, err
	}
	logger.WithFields(logrus.Fields{"file": path, "run_id": snap.RunID}).Debug("export written")
	return path, nil
}
