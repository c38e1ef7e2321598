// Package remove provides the runner that deletes a timesheet.
package remove

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/punch/pkg/printers"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timesheet"
)

// Remove deletes the timesheet with the given id from the day. Nothing is
// persisted when the id does not exist.
type Remove struct {
	ID          string
	Day         string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	d, err := n.Persistence.Load(n.Day)
	if err != nil {
		return err
	}

	if err := d.Remove(n.ID); err != nil {
		return err
	}
	if err := n.Persistence.Save(n.Day, d); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(n.Day)
	rows, grand := d.Summarize(timesheet.ClockOf(time.Now()))
	pp.Summary(rows, grand)

	return nil
}
