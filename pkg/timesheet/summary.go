package timesheet

import (
	"time"

	"tableflip.dev/punch/pkg/timeutil"
)

// Status labels a summary row.
type Status string

const (
	StatusNone       Status = ""
	StatusRunning    Status = "Running"
	StatusLastActive Status = "Last Active"
)

// Row is one line of the day summary. Rendering is left to the printers.
type Row struct {
	ID     string
	Name   string
	Status Status
	Total  time.Duration
}

// Summarize computes the display rows in mint order plus the grand total.
// Totals are rounded per block; the open timesheet additionally bills the
// rounded time elapsed since it was opened.
func (d *DayState) Summarize(now Clock) ([]Row, time.Duration) {
	rows := make([]Row, 0, len(d.Timesheets))
	grand := time.Duration(0)
	for _, id := range d.Order() {
		ts := d.Timesheets[id]
		total := ts.Rounded()
		status := StatusNone
		switch {
		case id == d.OpenID && ts.OpenSince != nil:
			total += timeutil.RoundUp(now.Sub(*ts.OpenSince))
			status = StatusRunning
		case id == d.LastActiveID:
			status = StatusLastActive
		}
		grand += total
		rows = append(rows, Row{ID: id, Name: ts.Name, Status: status, Total: total})
	}
	return rows, grand
}
