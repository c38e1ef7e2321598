// Package start provides the runner that begins tracking a timesheet.
package start

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/punch/pkg/printers"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timesheet"
)

// Start opens a new timesheet for the day, stopping any running one first.
type Start struct {
	Name        string
	Day         string
	Persistence store.Persistence
}

// Do mints the timesheet, persists the day, and reprints the summary.
func (n *Start) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not start, no persistence")
	}

	d, err := n.Persistence.Load(n.Day)
	if err != nil {
		return err
	}

	now := timesheet.ClockOf(time.Now())
	d.Start(n.Name, now)
	if err := n.Persistence.Save(n.Day, d); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(n.Day)
	rows, grand := d.Summarize(now)
	pp.Summary(rows, grand)

	return nil
}
