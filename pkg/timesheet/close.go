package timesheet

import "time"

// PruneWildcards removes every wildcard timesheet from the day and returns
// their combined unrounded elapsed time along with how many were removed.
func (d *DayState) PruneWildcards() (time.Duration, int) {
	wild := time.Duration(0)
	pruned := 0
	for _, id := range d.Order() {
		ts := d.Timesheets[id]
		if !ts.Wildcard() {
			continue
		}
		wild += ts.Elapsed()
		delete(d.Timesheets, id)
		pruned++
	}
	d.Normalize()
	return wild, pruned
}

// Sprinkle distributes wild across the remaining timesheets in proportion to
// their own unrounded elapsed time, pushing the stop of each timesheet's last
// block forward by its share. A day with no remaining recorded time cannot
// absorb anything and yields ErrNothingToSprinkleInto.
//
// The ratio is computed over unrounded time; rounding happens only at display
// time, so the appended shares conserve wild up to duration truncation.
func (d *DayState) Sprinkle(wild time.Duration) error {
	remaining := time.Duration(0)
	for _, ts := range d.Timesheets {
		remaining += ts.Elapsed()
	}
	if remaining <= 0 {
		return ErrNothingToSprinkleInto
	}
	ratio := float64(wild) / float64(remaining)
	for _, id := range d.Order() {
		ts := d.Timesheets[id]
		if len(ts.Blocks) == 0 {
			continue
		}
		extra := time.Duration(float64(ts.Elapsed()) * ratio)
		last := &ts.Blocks[len(ts.Blocks)-1]
		last.Stop = last.Stop.Add(extra)
	}
	return nil
}
