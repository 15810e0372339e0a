package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseAndString(t *testing.T) {
	d, err := Parse("2026-06-01")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d.String() != "2026-06-01" {
		t.Fatalf("String() = %q, want 2026-06-01", d.String())
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"", "01-06-2026", "2026/06/01", "June 1", "2026-13-40"} {
		if _, err := Parse(bad); err == nil {
			t.Fatalf("Parse(%q): want error", bad)
		}
	}
}

func TestFromTimeTruncates(t *testing.T) {
	stamp := time.Date(2026, 3, 10, 23, 59, 59, 0, time.Local)
	d := FromTime(stamp)
	if d.String() != "2026-03-10" {
		t.Fatalf("FromTime() = %s, want 2026-03-10", d)
	}
	if !d.SameDay(stamp) {
		t.Fatal("SameDay() = false for the timestamp it was built from")
	}
	if d.SameDay(stamp.Add(time.Minute)) {
		t.Fatal("SameDay() = true for one minute past midnight the next day")
	}
}

func TestAddDaysCrossesMonths(t *testing.T) {
	d := New(2026, time.February, 28)
	if got := d.AddDays(1).String(); got != "2026-03-01" {
		t.Fatalf("AddDays(1) = %s, want 2026-03-01", got)
	}
	if got := d.AddDays(-28).String(); got != "2026-01-31" {
		t.Fatalf("AddDays(-28) = %s, want 2026-01-31", got)
	}
}

func TestEqual(t *testing.T) {
	a := New(2026, time.March, 10)
	b := New(2026, time.March, 10)
	c := New(2025, time.March, 10)
	if !a.Equal(b) {
		t.Fatal("same day: Equal() = false")
	}
	if a.Equal(c) {
		t.Fatal("same day of a different year: Equal() = true")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2026, time.June, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2026-06-01"` {
		t.Fatalf("Marshal() = %s, want \"2026-06-01\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip = %s, want %s", back, d)
	}

	if err := json.Unmarshal([]byte(`"not a date"`), &back); err == nil {
		t.Fatal("Unmarshal(bad date): want error")
	}
}
