// Package datetime provides calendar date utility functions.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/AlainEkh/heloc-calculator/pkg/constants"
)

const (
	// DateLayout is the format expected on input and is also the output
	// date format.
	DateLayout = constants.DateLayout
)

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(value string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return d, nil
}

// MustParseDate parses a date string and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(value string) civil.Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// DateIn returns the calendar date of t as observed in loc.
func DateIn(t time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.Local
	}
	return civil.DateOf(t.In(loc))
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamped adds calendar months to d. When the day of month does not
// exist in the target month it is clamped to that month's last day, so
// January 31 plus one month is the last day of February.
func AddMonthsClamped(d civil.Date, months int) civil.Date {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := d.Day
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return civil.Date{Year: first.Year(), Month: first.Month(), Day: day}
}

// CycleEnd returns the last date of the accrual cycle that starts on start:
// one calendar month later, minus one day.
func CycleEnd(start civil.Date) civil.Date {
	return AddMonthsClamped(start, constants.CycleMonths).AddDays(-1)
}

// DaysBetween returns the number of whole days from start to end. The result
// is negative when end is before start.
func DaysBetween(start, end civil.Date) int {
	return end.DaysSince(start)
}
