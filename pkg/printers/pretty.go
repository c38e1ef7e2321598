// Package printers renders day summaries and messages for the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/punch/pkg/timesheet"
	"tableflip.dev/punch/pkg/timeutil"
)

// PrettyPrint writes styled output. Out defaults to color.Output so styling
// survives on Windows terminals; tests inject a buffer.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) writer() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.writer(), "")
}

// Title prints the day heading.
func (pp *PrettyPrint) Title(day string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.writer(), day)
}

// Summary renders the day's rows as a table followed by the grand total.
func (pp *PrettyPrint) Summary(rows []timesheet.Row, grand time.Duration) {
	w := pp.writer()

	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	bold := color.New(color.Bold).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Timesheet"), bold("Total"), bold("Status"))
	for _, r := range rows {
		tbl.AddRow(r.ID, r.Name, timeutil.FormatHHMM(r.Total), string(r.Status))
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintf(w, "%s  %s\n\n", bold("Total"), timeutil.FormatHHMM(grand))
}

// Info prints a faint informational message.
func (pp *PrettyPrint) Info(format string, args ...interface{}) {
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.writer(), format+"\n", args...)
}

// Handoff prints one close-workflow line: the timesheet name and its billed
// total, aligned for reading down the list.
func (pp *PrettyPrint) Handoff(name string, total time.Duration) {
	b := color.New(color.Bold)
	_, _ = b.Fprint(pp.writer(), name)
	pad := 24 - len(name)
	if pad < 1 {
		pad = 1
	}
	_, _ = fmt.Fprintf(pp.writer(), "%s%s\n", strings.Repeat(" ", pad), timeutil.FormatHHMM(total))
}
