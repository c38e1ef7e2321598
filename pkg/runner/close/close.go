// Package close provides the end-of-day reconciliation runner: it stops the
// running timer, prunes wildcard timesheets, sprinkles their time across the
// rest, and hands each timesheet off to the external opener. The planning
// itself (pruning, sprinkling) lives in pkg/timesheet; this package only
// drives the prompts around it.
package close

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"tableflip.dev/punch/pkg/opener"
	"tableflip.dev/punch/pkg/printers"
	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timesheet"
	"tableflip.dev/punch/pkg/timeutil"
)

// Close reconciles one day. In, Out, Opener, and Editor default to the real
// terminal and OS collaborators; tests inject fakes.
type Close struct {
	Day         string
	Persistence store.Persistence

	In     io.Reader
	Out    io.Writer
	Opener func(string) error
	Editor func(string) error
}

func (n *Close) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not close, no persistence")
	}

	in := bufio.NewReader(n.reader())
	pp := printers.PrettyPrint{Out: n.writer()}

	d, err := n.Persistence.Load(n.Day)
	if err != nil {
		return err
	}

	// Declining here aborts the whole workflow before anything mutates.
	if !n.confirm(in, "Close out %s? [y/n] ", n.Day) {
		pp.Info("left %s as it is", n.Day)
		return nil
	}

	now := timesheet.ClockOf(time.Now())
	if d.OpenID != "" {
		id, _ := d.Stop(now)
		if err := n.Persistence.Save(n.Day, d); err != nil {
			return err
		}
		pp.Info("stopped running timesheet %s", id)
	}

	pp.NewLine()
	pp.Title(n.Day)
	rows, grand := d.Summarize(now)
	pp.Summary(rows, grand)

	if len(d.Timesheets) == 0 {
		pp.Info("nothing tracked on %s, nothing to close", n.Day)
		return nil
	}

	// Escape hatch: hand the file to the editor, then reload so the rest of
	// the workflow honors whatever was changed out-of-band.
	if n.confirm(in, "Edit %s before closing? [y/n] ", n.Persistence.Path(n.Day)) {
		if err := n.edit(n.Persistence.Path(n.Day)); err != nil {
			return err
		}
		d, err = n.Persistence.Load(n.Day)
		if err != nil {
			return err
		}
	}

	wild, pruned := d.PruneWildcards()
	if pruned > 0 {
		if n.confirm(in, "Sprinkle %s of unnamed time across the remaining timesheets? [y/n] ",
			timeutil.FormatHHMM(wild)) {
			if err := d.Sprinkle(wild); err != nil {
				return err
			}
		}
		if err := n.Persistence.Save(n.Day, d); err != nil {
			return err
		}

		pp.NewLine()
		pp.Title(n.Day)
		rows, grand = d.Summarize(now)
		pp.Summary(rows, grand)
	}

	for _, id := range d.Order() {
		ts := d.Timesheets[id]
		if err := n.open(ts.Name); err != nil {
			fmt.Fprintf(os.Stderr, "close: open %s: %v\n", ts.Name, err)
		}
		pp.Handoff(ts.Name, ts.Rounded())
		n.acknowledge(in)
	}

	return nil
}

// confirm asks a yes/no question and re-prompts until it gets one. A closed
// input stream counts as no.
func (n *Close) confirm(in *bufio.Reader, format string, args ...interface{}) bool {
	for {
		fmt.Fprintf(n.writer(), format, args...)
		line, err := in.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprintln(n.writer(), "please answer y or n")
	}
}

// acknowledge blocks until the user presses enter.
func (n *Close) acknowledge(in *bufio.Reader) {
	fmt.Fprint(n.writer(), "press enter to continue ")
	_, _ = in.ReadString('\n')
	fmt.Fprintln(n.writer(), "")
}

func (n *Close) reader() io.Reader {
	if n.In != nil {
		return n.In
	}
	return os.Stdin
}

func (n *Close) writer() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return os.Stdout
}

func (n *Close) open(target string) error {
	if n.Opener != nil {
		return n.Opener(target)
	}
	return opener.Open(target)
}

func (n *Close) edit(path string) error {
	if n.Editor != nil {
		return n.Editor(path)
	}
	return opener.Edit(path)
}
