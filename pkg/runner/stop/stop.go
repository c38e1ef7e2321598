// Package stop provides the runner that closes the running timesheet.
package stop

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/punch/pkg/printers"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timesheet"
)

// Stop closes the day's running timesheet.
type Stop struct {
	Day         string
	Persistence store.Persistence
}

// Do closes the open block, persists the day, and reprints the summary.
func (n *Stop) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not stop, no persistence")
	}

	d, err := n.Persistence.Load(n.Day)
	if err != nil {
		return err
	}

	now := timesheet.ClockOf(time.Now())
	if _, err := d.Stop(now); err != nil {
		return err
	}
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
