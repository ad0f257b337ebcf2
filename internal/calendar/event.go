package calendar

import (
	"fmt"

	"github.com/username/day-calendar/pkg/clocktime"
)

// Event is a single scheduled item in one day of a Calendar.
// Events are created and released only by Calendar operations.
type Event[T any] struct {
	name      string
	startTime int // HHMM
	duration  int // minutes
	info      *T
	next      *Event[T]
}

// Name returns the event name
func (e *Event[T]) Name() string {
	return e.name
}

// StartTime returns the start time encoded as HHMM
func (e *Event[T]) StartTime() int {
	return e.startTime
}

// Duration returns the duration in minutes
func (e *Event[T]) Duration() int {
	return e.duration
}

// Info returns the attached payload, nil if none
func (e *Event[T]) Info() *T {
	return e.info
}

// End returns the end time encoded as HHMM. It may exceed 2400.
func (e *Event[T]) End() int {
	return clocktime.Add(e.startTime, e.duration)
}

// String renders the event the way it appears in a calendar report
func (e *Event[T]) String() string {
	return fmt.Sprintf("Event's Name: \"%s\", Start_time: %d, Duration: %d",
		e.name, e.startTime, e.duration)
}
