// Package resume provides the runner that reopens a stopped timesheet.
package resume

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/punch/pkg/printers"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timesheet"
)

// Resume reopens the timesheet with the given id, or the most recently
// active one when ID is empty.
type Resume struct {
	ID          string
	Day         string
	Persistence store.Persistence
}

// Do reopens the target, persists the day, and reprints the summary.
func (n *Resume) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not resume, no persistence")
	}

	d, err := n.Persistence.Load(n.Day)
	if err != nil {
		return err
	}

	now := timesheet.ClockOf(time.Now())
	if _, err := d.Resume(n.ID, now); err != nil {
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
