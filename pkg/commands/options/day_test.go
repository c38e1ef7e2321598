package options

import (
	"testing"
	"time"
)

func TestDayDefaultsToToday(t *testing.T) {
	o := &DayOptions{}
	got, err := o.Day()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Now().Format("2006-01-02"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDayYesterday(t *testing.T) {
	o := &DayOptions{DayString: "yesterday"}
	got, err := o.Day()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Now().AddDate(0, 0, -1).Format("2006-01-02"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDayExplicit(t *testing.T) {
	for _, in := range []string{"2026-08-25", "2026-8-25"} {
		o := &DayOptions{DayString: in}
		got, err := o.Day()
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
		if got != "2026-08-25" {
			t.Fatalf("expected canonical key for %q, got %q", in, got)
		}
	}
}

func TestDayInvalid(t *testing.T) {
	o := &DayOptions{DayString: "not-a-day"}
	if _, err := o.Day(); err == nil {
		t.Fatal("expected error for invalid day")
	}
}
