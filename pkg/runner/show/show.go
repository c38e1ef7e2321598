// Package show provides the read-only summary runner.
package show

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/punch/pkg/printers"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timesheet"
)

// Show prints the summary table for one day without mutating anything.
type Show struct {
	Day         string
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show, no persistence")
	}

	d, err := n.Persistence.Load(n.Day)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(n.Day)
	rows, grand := d.Summarize(timesheet.ClockOf(time.Now()))
	pp.Summary(rows, grand)

	return nil
}
