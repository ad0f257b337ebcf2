package calendar

import (
	"bufio"
	"fmt"
	"io"
)

// Print writes a human-readable report of the calendar to w.
// A "Day N" header is written for every day as soon as the calendar holds
// at least one event, including days without events.
func (c *Calendar[T]) Print(w io.Writer, includeSummary bool) error {
	if err := c.check(); err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrInvalidArgument)
	}

	bw := bufio.NewWriter(w)

	if includeSummary {
		fmt.Fprintf(bw, "Calendar's Name: \"%s\"\nDays: %d\nTotal Events: %d\n\n",
			c.name, c.days, c.total)
	}

	fmt.Fprintln(bw, "**** Events ****")

	for i, head := range c.events {
		if c.total != 0 {
			fmt.Fprintf(bw, "Day %d\n", i+1)
		}
		for ev := head; ev != nil; ev = ev.next {
			fmt.Fprintln(bw, ev.String())
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
