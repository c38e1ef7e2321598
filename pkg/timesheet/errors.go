package timesheet

import "errors"

var (
	// ErrNoRunningTimer is returned by Stop when no timesheet is open.
	ErrNoRunningTimer = errors.New("no running timer")

	// ErrNothingToResume is returned by Resume when no id is given and no
	// timesheet was active earlier in the day.
	ErrNothingToResume = errors.New("nothing to resume")

	// ErrTimesheetNotFound is returned when an explicit id does not exist.
	ErrTimesheetNotFound = errors.New("timesheet not found")

	// ErrAlreadyRunning is returned by Resume when the target is already open.
	ErrAlreadyRunning = errors.New("timesheet already running")

	// ErrNothingToSprinkleInto is returned by Sprinkle when the remaining
	// timesheets have no recorded time to distribute over.
	ErrNothingToSprinkleInto = errors.New("nothing to sprinkle into")
)
