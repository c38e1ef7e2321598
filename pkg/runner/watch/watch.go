// Package watch provides the runner that keeps a day's summary live: it
// re-renders whenever the underlying day file changes on disk.
package watch

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/punch/pkg/printers"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timesheet"
)

// Watch re-renders the day summary on every storage change until the context
// is cancelled.
type Watch struct {
	Day         string
	Persistence store.Persistence
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}

	if err := n.render(); err != nil {
		return err
	}

	ch, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	for ev := range ch {
		if ev.Day != "" && ev.Day != n.Day {
			continue
		}
		if err := n.render(); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	// The channel closed on its own, so the watcher died underneath us.
	return errors.New("can not watch any longer, storage watcher terminated")
}

func (n *Watch) render() error {
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
