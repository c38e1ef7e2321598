package store

import (
	"context"
	"os"
	"strings"
	"testing"

	"tableflip.dev/punch/pkg/timesheet"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T) (Persistence, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p, base
}

func TestLoadBootstrapsEmptyDay(t *testing.T) {
	p, _ := load(t)

	d, err := p.Load("2026-08-25")
	if err != nil {
		t.Fatalf("load day: %v", err)
	}
	if d.OpenID != "" || d.LastActiveID != "" || d.NextID != 0 || len(d.Timesheets) != 0 {
		t.Fatalf("expected empty day state, got %+v", d)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, _ := load(t)
	day := "2026-08-25"

	d := timesheet.NewDayState()
	start, _ := timesheet.ParseClock("09:00:00")
	stop, _ := timesheet.ParseClock("10:30:00")
	id := d.Start("writing", start)
	if _, err := d.Stop(stop); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := p.Save(day, d); err != nil {
		t.Fatalf("save: %v", err)
	}

	back, err := p.Load(day)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ts := back.Timesheets[id]
	if ts == nil || ts.Name != "writing" {
		t.Fatalf("expected timesheet %q named writing, got %+v", id, ts)
	}
	if len(ts.Blocks) != 1 || ts.Blocks[0].Start != start || ts.Blocks[0].Stop != stop {
		t.Fatalf("unexpected blocks: %+v", ts.Blocks)
	}
	if back.LastActiveID != id || back.NextID != 1 {
		t.Fatalf("expected last active %q and next id 1, got %q and %d", id, back.LastActiveID, back.NextID)
	}
}

func TestLoadSelfHealsDanglingOpenID(t *testing.T) {
	p, _ := load(t)
	day := "2026-08-25"

	raw := `{
  "open_id": "7",
  "last_active_id": "7",
  "next_id": 1,
  "timesheets": {
    "0": {"name": "writing", "time_blocks": [["09:00:00", "09:30:00"]], "open_since": null}
  }
}`
	if err := os.WriteFile(p.Path(day), []byte(raw), 0o644); err != nil {
		t.Fatalf("write raw day file: %v", err)
	}

	d, err := p.Load(day)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.OpenID != "" || d.LastActiveID != "" {
		t.Fatalf("expected dangling references cleared, got open=%q last=%q", d.OpenID, d.LastActiveID)
	}
}

func TestLoadRejectsBackwardBlock(t *testing.T) {
	p, _ := load(t)
	day := "2026-08-25"

	raw := `{
  "next_id": 1,
  "timesheets": {
    "0": {"name": "broken", "time_blocks": [["10:00:00", "09:00:00"]], "open_since": null}
  }
}`
	if err := os.WriteFile(p.Path(day), []byte(raw), 0o644); err != nil {
		t.Fatalf("write raw day file: %v", err)
	}
	if _, err := p.Load(day); err == nil {
		t.Fatal("expected error for block that stops before it starts")
	}
}

func TestDaysListsSavedDaysSorted(t *testing.T) {
	p, _ := load(t)

	for _, day := range []string{"2026-08-25", "2026-08-10", "2026-07-01"} {
		if err := p.Save(day, timesheet.NewDayState()); err != nil {
			t.Fatalf("save %s: %v", day, err)
		}
	}

	got := p.Days(context.Background())
	want := []string{"2026-07-01", "2026-08-10", "2026-08-25"}
	if len(got) != len(want) {
		t.Fatalf("expected %d days, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected days %v, got %v", want, got)
		}
	}
}

func TestPath(t *testing.T) {
	p, base := load(t)
	got := p.Path("2026-08-25")
	if !strings.HasPrefix(got, base) || !strings.HasSuffix(got, "2026-08-25.json") {
		t.Fatalf("unexpected path %q", got)
	}
}
