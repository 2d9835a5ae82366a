package timeutil

import "time"

// Todo datetime do sistema é armazenado e comparado em UTC.
// Valores sem offset na borda HTTP são interpretados como UTC.

const (
	DayFormat  = "2006-01-02"
	HourMinute = "15:04"
)

func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// ParseDay interpreta "2006-01-02" como o início do dia em UTC.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

// DayWindow devolve [início, fim) do dia UTC que contém day.
func DayWindow(day time.Time) (time.Time, time.Time) {
	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// AtHourMinute combina um dia UTC com um horário "15:04".
func AtHourMinute(day time.Time, hm string) (time.Time, error) {
	t, err := time.Parse(HourMinute, hm)
	if err != nil {
		return time.Time{}, err
	}
	day = day.UTC()
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		time.UTC,
	), nil
}

// ParseDateTime aceita RFC3339 com offset ou datetime "naive", que é
// assumido UTC.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		time.UTC,
	), nil
}
