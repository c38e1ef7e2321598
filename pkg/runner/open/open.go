// Package open provides the runner that hands a timesheet's name to the
// OS-level opener.
package open

import (
	"context"
	"errors"

	"tableflip.dev/punch/pkg/opener"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timesheet"
)

// Open invokes the external opener on the named timesheet. The name is
// treated as a document or target path.
type Open struct {
	ID          string
	Day         string
	Opener      func(string) error
	Persistence store.Persistence
}

func (n *Open) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open, no persistence")
	}

	d, err := n.Persistence.Load(n.Day)
	if err != nil {
		return err
	}

	ts, ok := d.Timesheets[n.ID]
	if !ok {
		return timesheet.ErrTimesheetNotFound
	}

	launch := n.Opener
	if launch == nil {
		launch = opener.Open
	}
	return launch(ts.Name)
}
