package calendar

import (
	"cmp"
	"fmt"
	"strings"
)

// Sort keys accepted by CompareBy
const (
	SortByStartTime = "start_time"
	SortByName      = "name"
	SortByDuration  = "duration"
)

// ByStartTime orders events by start time, then by duration
func ByStartTime[T any](a, b *Event[T]) int {
	if c := cmp.Compare(a.startTime, b.startTime); c != 0 {
		return c
	}
	return cmp.Compare(a.duration, b.duration)
}

// ByName orders events by name
func ByName[T any](a, b *Event[T]) int {
	return strings.Compare(a.name, b.name)
}

// ByDuration orders events by duration, then by start time
func ByDuration[T any](a, b *Event[T]) int {
	if c := cmp.Compare(a.duration, b.duration); c != 0 {
		return c
	}
	return cmp.Compare(a.startTime, b.startTime)
}

// CompareBy returns the stock comparison function for a sort key
func CompareBy[T any](key string) (CompareFunc[T], error) {
	switch key {
	case SortByStartTime, "":
		return ByStartTime[T], nil
	case SortByName:
		return ByName[T], nil
	case SortByDuration:
		return ByDuration[T], nil
	default:
		return nil, fmt.Errorf("unknown sort key '%s'", key)
	}
}
