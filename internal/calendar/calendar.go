package calendar

import (
	"fmt"

	"github.com/username/day-calendar/pkg/clocktime"
	"go.uber.org/zap"
)

// CompareFunc defines the order of events within a day.
// It returns a negative number when a sorts before b, zero when they are equal
// and a positive number otherwise.
type CompareFunc[T any] func(a, b *Event[T]) int

// FreeFunc releases an event's info payload
type FreeFunc[T any] func(info *T)

// Calendar holds a fixed number of days, each a sorted singly-linked list of events.
// It is not safe for concurrent use.
type Calendar[T any] struct {
	name      string
	days      int
	events    []*Event[T] // list head per day, 0-based
	total     int
	compare   CompareFunc[T]
	free      FreeFunc[T]
	logger    *zap.Logger
	destroyed bool
}

// New creates a calendar with the given number of days.
// compare and free may be nil: without compare events keep insertion order,
// without free payloads are never released by the calendar.
func New[T any](name string, days int, compare CompareFunc[T], free FreeFunc[T], logger *zap.Logger) (*Calendar[T], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: calendar name is required", ErrInvalidArgument)
	}
	if days < 1 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", ErrInvalidArgument, days)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Calendar[T]{
		name:    name,
		days:    days,
		events:  make([]*Event[T], days),
		compare: compare,
		free:    free,
		logger:  logger,
	}, nil
}

// Name returns the calendar name
func (c *Calendar[T]) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Days returns the number of day slots
func (c *Calendar[T]) Days() int {
	if c == nil {
		return 0
	}
	return c.days
}

// TotalEvents returns the number of events across all days
func (c *Calendar[T]) TotalEvents() int {
	if c == nil {
		return 0
	}
	return c.total
}

// Add inserts a new event into a day (1-based) at its sorted position.
// On failure the calendar does not take ownership of info.
func (c *Calendar[T]) Add(name string, startTime, duration int, info *T, day int) error {
	if err := c.check(); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: event name is required", ErrInvalidArgument)
	}
	if err := c.checkDay(day); err != nil {
		return err
	}
	if !clocktime.Valid(startTime) {
		return fmt.Errorf("%w: start time %d out of range [%d, %d]",
			ErrInvalidArgument, startTime, clocktime.Min, clocktime.Max)
	}
	if duration < 1 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidArgument, duration)
	}

	idx := day - 1
	if lookup(c.events[idx], name) != nil {
		c.logger.Warn("Duplicate event rejected",
			zap.String("calendar", c.name),
			zap.String("event", name),
			zap.Int("day", day))
		return fmt.Errorf("event %q %w in day %d", name, ErrDuplicate, day)
	}

	ev := &Event[T]{
		name:      name,
		startTime: startTime,
		duration:  duration,
		info:      info,
	}

	// Ties keep scanning so the new event lands after its equals
	var prev *Event[T]
	cur := c.events[idx]
	for cur != nil && c.order(ev, cur) >= 0 {
		prev = cur
		cur = cur.next
	}

	ev.next = cur
	if prev == nil {
		c.events[idx] = ev
	} else {
		prev.next = ev
	}
	c.total++

	c.logger.Debug("Event added",
		zap.String("calendar", c.name),
		zap.String("event", name),
		zap.Int("day", day),
		zap.Int("start_time", startTime),
		zap.Int("duration", duration),
		zap.Int("total_events", c.total))

	return nil
}

// Find returns the first event with the given name, scanning days in ascending order
func (c *Calendar[T]) Find(name string) (*Event[T], error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	for _, head := range c.events {
		if ev := lookup(head, name); ev != nil {
			return ev, nil
		}
	}

	return nil, fmt.Errorf("event %q %w", name, ErrNotFound)
}

// FindInDay returns the event with the given name in one day (1-based)
func (c *Calendar[T]) FindInDay(name string, day int) (*Event[T], error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if err := c.checkDay(day); err != nil {
		return nil, err
	}

	if ev := lookup(c.events[day-1], name); ev != nil {
		return ev, nil
	}

	return nil, fmt.Errorf("event %q %w in day %d", name, ErrNotFound, day)
}

// Info returns the payload of the first event with the given name.
// It returns nil both when the event is missing and when it has no payload;
// use LookupInfo to tell the two apart.
func (c *Calendar[T]) Info(name string) *T {
	info, _ := c.LookupInfo(name)
	return info
}

// LookupInfo returns the payload of the first event with the given name
// and whether such an event exists
func (c *Calendar[T]) LookupInfo(name string) (*T, bool) {
	ev, err := c.Find(name)
	if err != nil {
		return nil, false
	}
	return ev.info, true
}

// DayEvents returns a snapshot of one day's events in list order
func (c *Calendar[T]) DayEvents(day int) ([]*Event[T], error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if err := c.checkDay(day); err != nil {
		return nil, err
	}

	events := []*Event[T]{}
	for ev := c.events[day-1]; ev != nil; ev = ev.next {
		events = append(events, ev)
	}
	return events, nil
}

// DayLen returns the number of events in one day
func (c *Calendar[T]) DayLen(day int) (int, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	if err := c.checkDay(day); err != nil {
		return 0, err
	}

	n := 0
	for ev := c.events[day-1]; ev != nil; ev = ev.next {
		n++
	}
	return n, nil
}

// Remove removes the first event with the given name, scanning days in ascending order
func (c *Calendar[T]) Remove(name string) error {
	if err := c.check(); err != nil {
		return err
	}

	for i := range c.events {
		var prev *Event[T]
		for cur := c.events[i]; cur != nil; prev, cur = cur, cur.next {
			if cur.name != name {
				continue
			}

			if prev == nil {
				c.events[i] = cur.next
			} else {
				prev.next = cur.next
			}
			c.release(cur)
			c.total--

			c.logger.Debug("Event removed",
				zap.String("calendar", c.name),
				zap.String("event", name),
				zap.Int("day", i+1),
				zap.Int("total_events", c.total))

			return nil
		}
	}

	return fmt.Errorf("event %q %w", name, ErrNotFound)
}

// ClearDay removes every event of one day (1-based)
func (c *Calendar[T]) ClearDay(day int) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := c.checkDay(day); err != nil {
		return err
	}

	n := c.clearDay(day - 1)
	c.logger.Debug("Day cleared",
		zap.String("calendar", c.name),
		zap.Int("day", day),
		zap.Int("removed", n),
		zap.Int("total_events", c.total))

	return nil
}

// Clear removes every event of every day. The calendar stays usable.
func (c *Calendar[T]) Clear() error {
	if err := c.check(); err != nil {
		return err
	}

	n := 0
	for i := range c.events {
		n += c.clearDay(i)
	}
	c.logger.Debug("Calendar cleared",
		zap.String("calendar", c.name),
		zap.Int("removed", n))

	return nil
}

// Destroy releases every event and the day slots.
// Any later call on the calendar fails with ErrDestroyed.
func (c *Calendar[T]) Destroy() error {
	if err := c.check(); err != nil {
		return err
	}

	n := 0
	for i := range c.events {
		n += c.clearDay(i)
	}
	c.logger.Info("Calendar destroyed",
		zap.String("calendar", c.name),
		zap.Int("released", n))

	c.events = nil
	c.name = ""
	c.destroyed = true

	return nil
}

func (c *Calendar[T]) check() error {
	if c == nil {
		return fmt.Errorf("%w: nil calendar", ErrInvalidArgument)
	}
	if c.destroyed {
		return ErrDestroyed
	}
	return nil
}

func (c *Calendar[T]) checkDay(day int) error {
	if day < 1 || day > c.days {
		return fmt.Errorf("%w: day %d out of range [1, %d]", ErrInvalidArgument, day, c.days)
	}
	return nil
}

func (c *Calendar[T]) order(a, b *Event[T]) int {
	if c.compare == nil {
		return 0
	}
	return c.compare(a, b)
}

// clearDay releases all events of day index idx and returns how many were released
func (c *Calendar[T]) clearDay(idx int) int {
	n := 0
	for cur := c.events[idx]; cur != nil; {
		next := cur.next
		c.release(cur)
		cur = next
		n++
	}
	c.events[idx] = nil
	c.total -= n
	return n
}

// release hands the payload to the destructor exactly once
func (c *Calendar[T]) release(ev *Event[T]) {
	if ev.info != nil && c.free != nil {
		c.free(ev.info)
	}
	ev.info = nil
	ev.next = nil
}

func lookup[T any](head *Event[T], name string) *Event[T] {
	for ev := head; ev != nil; ev = ev.next {
		if ev.name == name {
			return ev
		}
	}
	return nil
}
