package timesheet

import "strconv"

// Start begins tracking a new timesheet at now, stopping any timesheet that
// is already open first. An empty name records a wildcard entry. The new id
// is returned.
func (d *DayState) Start(name string, now Clock) string {
	if name == "" {
		name = Wildcard
	}
	if d.OpenID != "" {
		_, _ = d.Stop(now)
	}
	id := strconv.Itoa(d.NextID)
	d.NextID++
	at := now
	d.Timesheets[id] = &Timesheet{Name: name, OpenSince: &at}
	d.OpenID = id
	d.LastActiveID = id
	return id
}

// Stop closes the open timesheet's running block at now and returns its id.
func (d *DayState) Stop(now Clock) (string, error) {
	if d.OpenID == "" {
		return "", ErrNoRunningTimer
	}
	id := d.OpenID
	if ts := d.Timesheets[id]; ts != nil && ts.OpenSince != nil {
		ts.Blocks = append(ts.Blocks, Block{Start: *ts.OpenSince, Stop: now})
		ts.OpenSince = nil
	}
	d.OpenID = ""
	return id, nil
}

// Resume reopens the timesheet with the given id at now, or the most recently
// active one when id is empty. Whatever is currently running is stopped
// first. The resumed id is returned.
func (d *DayState) Resume(id string, now Clock) (string, error) {
	defaulted := false
	if id == "" {
		if d.LastActiveID == "" {
			return "", ErrNothingToResume
		}
		id = d.LastActiveID
		defaulted = true
	}
	ts, ok := d.Timesheets[id]
	if !ok {
		if defaulted {
			return "", ErrNothingToResume
		}
		return "", ErrTimesheetNotFound
	}
	if ts.OpenSince != nil {
		return "", ErrAlreadyRunning
	}
	if d.OpenID != "" {
		_, _ = d.Stop(now)
	}
	at := now
	ts.OpenSince = &at
	d.OpenID = id
	d.LastActiveID = id
	return id, nil
}

// Remove deletes the timesheet with the given id. Dangling open or
// last-active references are left for Normalize to clear on the next save.
func (d *DayState) Remove(id string) error {
	if _, ok := d.Timesheets[id]; !ok {
		return ErrTimesheetNotFound
	}
	delete(d.Timesheets, id)
	return nil
}
