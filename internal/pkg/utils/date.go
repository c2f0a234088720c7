package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

// DateOf returns the calendar date of t as observed in loc, normalized to midnight UTC.
// All calendar dates in the engine use this representation so they compare with ==.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeDate drops the time of day and location of d, keeping its wall-clock date.
func NormalizeDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a normalized date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// MonthDay returns the MM-DD part of a date, used for recurring holiday matching.
func MonthDay(d time.Time) string {
	return d.Format("01-02")
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ISOWeekBounds returns the Monday and Sunday of the ISO week containing d.
func ISOWeekBounds(d time.Time) (time.Time, time.Time) {
	d = NormalizeDate(d)
	monday := d.AddDate(0, 0, -(ISOWeekday(d) - 1))
	return monday, monday.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of d's month.
func MonthBounds(d time.Time) (time.Time, time.Time) {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// DatesBetween returns every date from start to end inclusive.
func DatesBetween(start, end time.Time) []time.Time {
	start, end = NormalizeDate(start), NormalizeDate(end)
	if end.Before(start) {
		return nil
	}
	dates := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// ParseClock parses HH:MM or HH:MM:SS and returns minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// At returns the instant at the given clock time on date d in loc.
func At(d time.Time, clock string, loc *time.Location) (time.Time, error) {
	minutes, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}
