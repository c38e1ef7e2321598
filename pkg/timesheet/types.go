// Package timesheet models one day of tracked work sessions and the state
// machine that opens, closes, and reconciles them.
package timesheet

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"tableflip.dev/punch/pkg/timeutil"
)

// Wildcard is the sentinel name given to timesheets started without a name.
// Their time is redistributed across named timesheets when the day closes.
const Wildcard = "..."

// Block is a closed interval of tracked time within a single day. It
// serializes as a two-element ["HH:MM:SS", "HH:MM:SS"] pair.
type Block struct {
	Start Clock
	Stop  Clock
}

// Duration is the unrounded length of the block.
func (b Block) Duration() time.Duration {
	return b.Stop.Sub(b.Start)
}

func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Clock{b.Start, b.Stop})
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var pair []Clock
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("time block must have exactly a start and a stop, got %d values", len(pair))
	}
	b.Start, b.Stop = pair[0], pair[1]
	return nil
}

// Timesheet is one named work session and its recorded time blocks.
type Timesheet struct {
	Name      string  `json:"name"`
	Blocks    []Block `json:"time_blocks"`
	OpenSince *Clock  `json:"open_since"`
}

// Wildcard reports whether this timesheet was started without a name.
func (t *Timesheet) Wildcard() bool {
	return t.Name == Wildcard
}

// Elapsed is the unrounded total of all closed blocks.
func (t *Timesheet) Elapsed() time.Duration {
	total := time.Duration(0)
	for _, b := range t.Blocks {
		total += b.Duration()
	}
	return total
}

// Rounded is the billed total: each block rounded up independently, then
// summed. Rounding per block rather than over the total matches how the
// summary bills short interruptions.
func (t *Timesheet) Rounded() time.Duration {
	total := time.Duration(0)
	for _, b := range t.Blocks {
		total += timeutil.RoundUp(b.Duration())
	}
	return total
}

// DayState is the full persisted record for one calendar day.
type DayState struct {
	OpenID       string                `json:"open_id,omitempty"`
	LastActiveID string                `json:"last_active_id,omitempty"`
	NextID       int                   `json:"next_id"`
	Timesheets   map[string]*Timesheet `json:"timesheets"`
}

// NewDayState returns the empty state a day file is bootstrapped with.
func NewDayState() *DayState {
	return &DayState{Timesheets: make(map[string]*Timesheet)}
}

// Order returns timesheet ids in mint order. Ids are minted from a
// monotonically increasing counter, so ascending numeric order is insertion
// order.
func (d *DayState) Order() []string {
	ids := make([]string, 0, len(d.Timesheets))
	for id := range d.Timesheets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, aerr := strconv.Atoi(ids[i])
		b, berr := strconv.Atoi(ids[j])
		if aerr != nil || berr != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})
	return ids
}

// Normalize restores the day's internal consistency: references to missing
// timesheets are cleared, stray open markers are dropped, and the id counter
// is bumped past every issued id. Load and Save both run it, so a hand-edited
// file self-heals instead of failing.
func (d *DayState) Normalize() {
	if d.Timesheets == nil {
		d.Timesheets = make(map[string]*Timesheet)
	}
	if d.OpenID != "" {
		if ts, ok := d.Timesheets[d.OpenID]; !ok || ts.OpenSince == nil {
			d.OpenID = ""
		}
	}
	if d.LastActiveID != "" {
		if _, ok := d.Timesheets[d.LastActiveID]; !ok {
			d.LastActiveID = ""
		}
	}
	for id, ts := range d.Timesheets {
		if ts.OpenSince != nil && id != d.OpenID {
			ts.OpenSince = nil
		}
	}
	for id := range d.Timesheets {
		if n, err := strconv.Atoi(id); err == nil && n >= d.NextID {
			d.NextID = n + 1
		}
	}
}

// Validate rejects shapes Normalize cannot heal, currently blocks that run
// backwards. Overnight wraparound is not supported.
func (d *DayState) Validate() error {
	for _, id := range d.Order() {
		ts := d.Timesheets[id]
		for i, b := range ts.Blocks {
			if b.Stop < b.Start {
				return fmt.Errorf("timesheet %s (%s): block %d stops at %s before it starts at %s",
					id, ts.Name, i, b.Stop, b.Start)
			}
		}
	}
	return nil
}
