// Package date parses the day of a diary entry.
package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.Time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Time().After(x.Time()) }

// String format the date in its standard format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateFormat)
}

// Parse parses a Date relative to today. It accepts:
//
//	""           the zero Date
//	"today"      today
//	"yesterday"  the day before today
//	"-3"         3 days ago
//	"2025-7-1"   an ISO date, single-digit month and day are allowed
//
// Dates in the future are rejected: an entry cannot record what did not happen yet.
func Parse(str string) (Date, error) {
	return parse(str, Today())
}

func parse(str string, today Date) (Date, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	var d Date
	switch {
	case str == "":
		return Date{}, nil
	case str == "today":
		d = today
	case str == "yesterday":
		d = today.Add(-1)
	case strings.HasPrefix(str, "-"):
		n, err := strconv.Atoi(str[1:])
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q, want a number of days after '-': %w", str, err)
		}
		d = today.Add(-n)
	default:
		on, err := time.Parse(readDateFormat, str)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
		}
		d = New(on.Date())
	}
	if d.After(today) {
		return Date{}, fmt.Errorf("invalid date %q: %s is in the future", str, d)
	}
	return d, nil
}
