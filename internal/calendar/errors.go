package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for missing or out of range arguments
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when no event matches the requested name
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a day already holds an event with the same name
	ErrDuplicate = errors.New("already exists")

	// ErrDestroyed is returned by every operation on a destroyed calendar.
	// It matches ErrInvalidArgument with errors.Is.
	ErrDestroyed = fmt.Errorf("%w: calendar destroyed", ErrInvalidArgument)
)
