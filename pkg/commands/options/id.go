package options

// IDOptions carries a timesheet id argument.
type IDOptions struct {
	ID string
}
