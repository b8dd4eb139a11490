package timeutil

import (
	"testing"
	"time"
)

func TestDateKeySameLocalDay(t *testing.T) {
	morning := time.Date(2024, 3, 15, 0, 1, 0, 0, time.Local)
	night := time.Date(2024, 3, 15, 23, 59, 0, 0, time.Local)
	if DateKey(morning) != DateKey(night) {
		t.Fatalf("same local day must share a key: %s vs %s",
			DateKey(morning), DateKey(night))
	}
	if DateKey(morning) != "2024-03-15" {
		t.Fatalf("unexpected key %q", DateKey(morning))
	}
}

func TestDateKeyCrossesAtLocalMidnight(t *testing.T) {
	before := time.Date(2024, 3, 15, 23, 59, 59, 0, time.Local)
	after := time.Date(2024, 3, 16, 0, 0, 1, 0, time.Local)
	if DateKey(before) == DateKey(after) {
		t.Fatalf("midnight must split keys")
	}
}

func TestParseDateKeyRoundTrip(t *testing.T) {
	day, err := ParseDateKey("2024-03-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if DateKey(day) != "2024-03-15" {
		t.Fatalf("round trip changed the key: %q", DateKey(day))
	}
	if _, err := ParseDateKey("March 15"); err == nil {
		t.Fatalf("expected error for malformed key")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)
	b := time.Date(2024, 3, 15, 22, 30, 0, 0, time.Local)
	c := time.Date(2024, 3, 16, 0, 30, 0, 0, time.Local)
	if !SameDay(a, b) {
		t.Fatalf("expected same day")
	}
	if SameDay(a, c) {
		t.Fatalf("expected different days")
	}
}

func TestDisplayDate(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	if got := DisplayDate(day); got != "Friday, March 15, 2024" {
		t.Fatalf("unexpected display date %q", got)
	}
}
