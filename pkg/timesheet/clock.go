package timesheet

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time of day, stored as the offset since midnight. It
// serializes as "HH:MM:SS". Hours may exceed 23 after a close pushes a block
// past what was actually recorded.
type Clock time.Duration

// ClockOf truncates t to its time-of-day component.
func ClockOf(t time.Time) Clock {
	return Clock(time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second)
}

// ParseClock parses an "HH:MM:SS" value. The whole input must be consumed,
// so a hand-edited day file with trailing garbage is rejected rather than
// silently truncated.
func ParseClock(v string) (Clock, error) {
	parts := strings.Split(v, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value %q", v)
	}
	h, herr := strconv.Atoi(parts[0])
	m, merr := strconv.Atoi(parts[1])
	s, serr := strconv.Atoi(parts[2])
	if herr != nil || merr != nil || serr != nil {
		return 0, fmt.Errorf("invalid clock value %q", v)
	}
	if h < 0 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, fmt.Errorf("invalid clock value %q", v)
	}
	return Clock(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second), nil
}

// Sub returns the elapsed time from o to c.
func (c Clock) Sub(o Clock) time.Duration {
	return time.Duration(c - o)
}

// Add pushes c forward by d.
func (c Clock) Add(d time.Duration) Clock {
	return c + Clock(d)
}

func (c Clock) String() string {
	d := time.Duration(c)
	return fmt.Sprintf("%02d:%02d:%02d",
		d/time.Hour, (d%time.Hour)/time.Minute, (d%time.Minute)/time.Second)
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := ParseClock(v)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
