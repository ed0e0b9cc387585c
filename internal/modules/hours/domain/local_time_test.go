package domain

import (
	"errors"
	"testing"
	"time"
)

func TestIsValidLocalTime(t *testing.T) {
	cases := []struct {
		input    string
		expected bool
	}{
		{input: "09:00", expected: true},
		{input: "9:00", expected: true},
		{input: " 23:59 ", expected: true},
		{input: "00:00", expected: true},
		{input: "24:00", expected: false},
		{input: "12:60", expected: false},
		{input: "9:5", expected: false},
		{input: "nine", expected: false},
		{input: "", expected: false},
		{input: "09:00:00", expected: false},
		{input: "-1:30", expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			if result := IsValidLocalTime(tc.input); result != tc.expected {
				t.Fatalf("IsValidLocalTime(%q) expected %v, got %v", tc.input, tc.expected, result)
			}
		})
	}
}

func TestParseLocalTimeCanonicalizes(t *testing.T) {
	value, err := ParseLocalTime(" 7:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "07:05" {
		t.Fatalf("expected 07:05, got %s", value)
	}
	minutes, ok := value.Minutes()
	if !ok || minutes != 7*60+5 {
		t.Fatalf("expected 425 minutes, got %d (ok=%v)", minutes, ok)
	}

	if _, err := ParseLocalTime("25:00"); !errors.Is(err, ErrInvalidLocalTime) {
		t.Fatalf("expected ErrInvalidLocalTime, got %v", err)
	}
	if LocalTime("bogus").Canonical() != "" {
		t.Fatal("expected empty canonical form for malformed value")
	}
}

func TestDayFromWeekday(t *testing.T) {
	cases := map[time.Weekday]Day{
		time.Monday:    Monday,
		time.Wednesday: Wednesday,
		time.Saturday:  Saturday,
		time.Sunday:    Sunday,
	}
	for weekday, expected := range cases {
		if actual := DayFromWeekday(weekday); actual != expected {
			t.Fatalf("DayFromWeekday(%v) expected %s got %s", weekday, expected, actual)
		}
	}
	if DayAt(-1) != Sunday || DayAt(7) != Monday {
		t.Fatal("DayAt must wrap around the week")
	}
	if Day("holiday").Index() != -1 {
		t.Fatal("unknown day must have index -1")
	}
}
