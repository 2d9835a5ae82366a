package timeutil

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDay() = %v", err)
	}
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Errorf("day = %v, want %v", day, want)
	}

	if _, err := ParseDay("02/03/2026"); err == nil {
		t.Error("expected error for wrong format")
	}
}

func TestDayWindow(t *testing.T) {
	start, end := DayWindow(time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC))
	if !start.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestAtHourMinute(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got, err := AtHourMinute(day, "09:30")
	if err != nil {
		t.Fatalf("AtHourMinute() = %v", err)
	}
	if !got.Equal(time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("got %v", got)
	}

	if _, err := AtHourMinute(day, "9h30"); err == nil {
		t.Error("expected error for malformed time")
	}
}

func TestParseDateTime(t *testing.T) {
	t.Run("rfc3339 with offset normalized to utc", func(t *testing.T) {
		got, err := ParseDateTime("2026-03-02T10:00:00-03:00")
		if err != nil {
			t.Fatalf("ParseDateTime() = %v", err)
		}
		want := time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("naive assumed utc", func(t *testing.T) {
		got, err := ParseDateTime("2026-03-02T10:00:00")
		if err != nil {
			t.Fatalf("ParseDateTime() = %v", err)
		}
		want := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if got.Location() != time.UTC {
			t.Errorf("location = %v, want UTC", got.Location())
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := ParseDateTime("tomorrow at noon"); err == nil {
			t.Error("expected error")
		}
	})
}
