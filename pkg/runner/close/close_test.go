package close

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timesheet"
)

// memoryPersistence keeps day states as serialized JSON so Load always hands
// back an independent copy, the way the disk store does.
type memoryPersistence struct {
	days  map[string][]byte
	saves int
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{days: make(map[string][]byte)}
}

func (m *memoryPersistence) Load(day string) (*timesheet.DayState, error) {
	data, ok := m.days[day]
	if !ok {
		return timesheet.NewDayState(), nil
	}
	d := timesheet.NewDayState()
	if err := json.Unmarshal(data, d); err != nil {
		return nil, err
	}
	d.Normalize()
	return d, nil
}

func (m *memoryPersistence) Save(day string, d *timesheet.DayState) error {
	d.Normalize()
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	m.days[day] = data
	m.saves++
	return nil
}

func (m *memoryPersistence) Path(day string) string {
	return "/tmp/punch-test/" + day + ".json"
}

func (m *memoryPersistence) Days(_ context.Context) []string {
	days := make([]string, 0, len(m.days))
	for day := range m.days {
		days = append(days, day)
	}
	return days
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	return nil, errors.New("not watchable")
}

const day = "2026-08-25"

func seed(t *testing.T, m *memoryPersistence, d *timesheet.DayState) {
	t.Helper()
	if err := m.Save(day, d); err != nil {
		t.Fatalf("seed: %v", err)
	}
	m.saves = 0
}

func clock(t *testing.T, v string) timesheet.Clock {
	t.Helper()
	c, err := timesheet.ParseClock(v)
	if err != nil {
		t.Fatalf("parse clock %q: %v", v, err)
	}
	return c
}

func run(t *testing.T, m *memoryPersistence, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := &Close{
		Day:         day,
		Persistence: m,
		In:          strings.NewReader(input),
		Out:         &out,
		Opener:      func(string) error { return nil },
		Editor:      func(string) error { return nil },
	}
	err := c.Do(context.Background())
	return out.String(), err
}

func TestCloseDeclinedAbortsWithoutMutation(t *testing.T) {
	m := newMemoryPersistence()
	d := timesheet.NewDayState()
	d.Start("writing", clock(t, "09:00:00"))
	seed(t, m, d)

	if _, err := run(t, m, "n\n"); err != nil {
		t.Fatalf("close: %v", err)
	}
	if m.saves != 0 {
		t.Fatalf("expected no saves after decline, got %d", m.saves)
	}

	back, err := m.Load(day)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.OpenID == "" {
		t.Fatal("expected the timer still running")
	}
}

func TestCloseEmptyDayExitsEarly(t *testing.T) {
	m := newMemoryPersistence()

	out, err := run(t, m, "y\n")
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if !strings.Contains(out, "nothing tracked") {
		t.Fatalf("expected early-out message, got:\n%s", out)
	}
	if m.saves != 0 {
		t.Fatalf("expected no saves for empty day, got %d", m.saves)
	}
}

func TestCloseStopsRunningTimer(t *testing.T) {
	m := newMemoryPersistence()
	d := timesheet.NewDayState()
	d.Start("writing", clock(t, "09:00:00"))
	seed(t, m, d)

	// confirm close, skip edit, acknowledge the single handoff
	out, err := run(t, m, "y\nn\n\n")
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if !strings.Contains(out, "stopped running timesheet") {
		t.Fatalf("expected stop report, got:\n%s", out)
	}

	back, _ := m.Load(day)
	if back.OpenID != "" {
		t.Fatal("expected no open timer after close")
	}
}

func TestCloseSprinkle(t *testing.T) {
	m := newMemoryPersistence()
	d := timesheet.NewDayState()
	d.Timesheets["0"] = &timesheet.Timesheet{Name: "writing", Blocks: []timesheet.Block{
		{Start: clock(t, "09:00:00"), Stop: clock(t, "10:00:00")},
	}}
	d.Timesheets["1"] = &timesheet.Timesheet{Name: timesheet.Wildcard, Blocks: []timesheet.Block{
		{Start: clock(t, "10:00:00"), Stop: clock(t, "10:30:00")},
	}}
	d.NextID = 2
	seed(t, m, d)

	var opened []string
	var out bytes.Buffer
	c := &Close{
		Day:         day,
		Persistence: m,
		In:          strings.NewReader("y\nn\ny\n\n"), // close, no edit, sprinkle, ack
		Out:         &out,
		Opener: func(target string) error {
			opened = append(opened, target)
			return nil
		},
		Editor: func(string) error { return nil },
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	back, _ := m.Load(day)
	if len(back.Timesheets) != 1 {
		t.Fatalf("expected wildcard pruned, got %d timesheets", len(back.Timesheets))
	}
	// "writing" absorbs the whole 30m wildcard pool.
	if got := back.Timesheets["0"].Elapsed(); got != 90*time.Minute {
		t.Fatalf("expected 90m after sprinkle, got %v", got)
	}
	if len(opened) != 1 || opened[0] != "writing" {
		t.Fatalf("expected one handoff to writing, got %v", opened)
	}
	if !strings.Contains(out.String(), "01:30") {
		t.Fatalf("expected re-displayed total 01:30, got:\n%s", out.String())
	}
}

func TestCloseSprinkleDeclinedStillPrunes(t *testing.T) {
	m := newMemoryPersistence()
	d := timesheet.NewDayState()
	d.Timesheets["0"] = &timesheet.Timesheet{Name: "writing", Blocks: []timesheet.Block{
		{Start: clock(t, "09:00:00"), Stop: clock(t, "10:00:00")},
	}}
	d.Timesheets["1"] = &timesheet.Timesheet{Name: timesheet.Wildcard, Blocks: []timesheet.Block{
		{Start: clock(t, "10:00:00"), Stop: clock(t, "10:30:00")},
	}}
	d.NextID = 2
	seed(t, m, d)

	if _, err := run(t, m, "y\nn\nn\n\n"); err != nil {
		t.Fatalf("close: %v", err)
	}

	back, _ := m.Load(day)
	if len(back.Timesheets) != 1 {
		t.Fatalf("expected wildcard pruned, got %d timesheets", len(back.Timesheets))
	}
	if got := back.Timesheets["0"].Elapsed(); got != time.Hour {
		t.Fatalf("expected writing untouched at 1h, got %v", got)
	}
}

func TestCloseWildcardOnlySprinkleFails(t *testing.T) {
	m := newMemoryPersistence()
	d := timesheet.NewDayState()
	d.Timesheets["0"] = &timesheet.Timesheet{Name: timesheet.Wildcard, Blocks: []timesheet.Block{
		{Start: clock(t, "09:00:00"), Stop: clock(t, "09:30:00")},
	}}
	d.NextID = 1
	seed(t, m, d)

	_, err := run(t, m, "y\nn\ny\n")
	if !errors.Is(err, timesheet.ErrNothingToSprinkleInto) {
		t.Fatalf("expected ErrNothingToSprinkleInto, got %v", err)
	}
	if m.saves != 0 {
		t.Fatalf("expected the failed sprinkle not to persist, got %d saves", m.saves)
	}
}

func TestCloseReloadsAfterEdit(t *testing.T) {
	m := newMemoryPersistence()
	d := timesheet.NewDayState()
	d.Timesheets["0"] = &timesheet.Timesheet{Name: "writing", Blocks: []timesheet.Block{
		{Start: clock(t, "09:00:00"), Stop: clock(t, "10:00:00")},
	}}
	d.Timesheets["1"] = &timesheet.Timesheet{Name: timesheet.Wildcard, Blocks: []timesheet.Block{
		{Start: clock(t, "10:00:00"), Stop: clock(t, "10:30:00")},
	}}
	d.NextID = 2
	seed(t, m, d)

	var out bytes.Buffer
	c := &Close{
		Day:         day,
		Persistence: m,
		In:          strings.NewReader("y\ny\nn\n\n\n"), // close, edit, decline sprinkle, acks
		Out:         &out,
		Opener:      func(string) error { return nil },
		Editor: func(path string) error {
			// Simulate an out-of-band edit that renames the named timesheet.
			edited, err := m.Load(day)
			if err != nil {
				return err
			}
			edited.Timesheets["0"].Name = "edited"
			return m.Save(day, edited)
		},
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	back, _ := m.Load(day)
	if back.Timesheets["0"].Name != "edited" {
		t.Fatalf("expected edit honored, got %q", back.Timesheets["0"].Name)
	}
}

func TestConfirmReprompts(t *testing.T) {
	m := newMemoryPersistence()
	d := timesheet.NewDayState()
	d.Start("writing", clock(t, "09:00:00"))
	if _, err := d.Stop(clock(t, "09:30:00")); err != nil {
		t.Fatalf("stop: %v", err)
	}
	seed(t, m, d)

	// Garbage answers before the eventual no.
	out, err := run(t, m, fmt.Sprintf("maybe\n%s\nn\n", "1"))
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if strings.Count(out, "please answer y or n") != 2 {
		t.Fatalf("expected two re-prompts, got:\n%s", out)
	}
	if m.saves != 0 {
		t.Fatalf("expected no saves, got %d", m.saves)
	}
}
