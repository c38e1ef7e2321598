// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-01-02"
	layoutISOLoose = "2006-1-2"
)

// DayOptions selects which day's ledger a command operates on.
type DayOptions struct {
	DayString string
}

// AddDayArgs wires the day selection flag on the provided command.
func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.DayString, "day", "",
		`Specify a day, example: --day="2026-08-25" or --day=yesterday.`)
}

// Day resolves the selector to the canonical YYYY-MM-DD storage key. Absent
// means today; the literal "yesterday" is honored.
func (o *DayOptions) Day() (string, error) {
	s := strings.TrimSpace(o.DayString)
	switch s {
	case "", "today":
		return time.Now().Format(layoutISO), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1).Format(layoutISO), nil
	}
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		t, err = time.Parse(layoutISOLoose, s)
		if err != nil {
			return "", fmt.Errorf("invalid day %q: %w", o.DayString, err)
		}
	}
	return t.Format(layoutISO), nil
}
