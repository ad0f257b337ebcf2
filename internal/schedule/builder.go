package schedule

import (
	"fmt"
	"time"

	"github.com/username/day-calendar/internal/calendar"
	"github.com/username/day-calendar/internal/config"
	"go.uber.org/zap"
)

// Outcome describes what happened to one configured event
type Outcome struct {
	Name   string
	Day    int
	Added  bool
	Reason string // Set when the event was rejected
}

// Result summarizes a build
type Result struct {
	Outcomes []Outcome
	Added    int
	Rejected int
	Duration time.Duration
}

// Builder builds a calendar from configuration
type Builder struct {
	config *config.Config
	logger *zap.Logger
}

// NewBuilder creates a new schedule builder
func NewBuilder(cfg *config.Config, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		config: cfg,
		logger: logger,
	}
}

// Build creates the calendar and adds every configured event in file order.
// Rejected events are recorded in the result; only a failure to create the
// calendar itself is returned as an error.
func (b *Builder) Build() (*calendar.Calendar[string], *Result, error) {
	started := time.Now()

	compare, err := calendar.CompareBy[string](b.config.Calendar.SortBy)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to select sort order: %w", err)
	}

	cal, err := calendar.New(b.config.Calendar.Name, b.config.Calendar.Days, compare, b.releaseNote, b.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create calendar: %w", err)
	}

	b.logger.Info("Building calendar",
		zap.String("calendar", cal.Name()),
		zap.Int("days", cal.Days()),
		zap.String("sort_by", b.config.Calendar.SortBy),
		zap.Int("configured_events", len(b.config.Events)))

	result := &Result{Outcomes: make([]Outcome, 0, len(b.config.Events))}

	for _, ev := range b.config.Events {
		outcome := Outcome{Name: ev.Name, Day: ev.Day}

		var info *string
		if ev.Note != "" {
			note := ev.Note
			info = &note
		}

		if err := cal.Add(ev.Name, ev.StartTime(), ev.Duration, info, ev.Day); err != nil {
			outcome.Reason = err.Error()
			result.Rejected++

			b.logger.Warn("Event rejected",
				zap.String("event", ev.Name),
				zap.Int("day", ev.Day),
				zap.Error(err))
		} else {
			outcome.Added = true
			result.Added++
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.Duration = time.Since(started)

	b.logger.Info("Calendar built",
		zap.String("calendar", cal.Name()),
		zap.Int("added", result.Added),
		zap.Int("rejected", result.Rejected),
		zap.Int("total_events", cal.TotalEvents()),
		zap.Duration("duration", result.Duration))

	return cal, result, nil
}

func (b *Builder) releaseNote(note *string) {
	b.logger.Debug("Event note released", zap.String("note", *note))
}
