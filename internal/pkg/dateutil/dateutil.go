// Package dateutil provides the civil-date arithmetic used by the projection
// engine. Months are added with the day-of-month clamped to the target
// month's length (Jan 31 + 1 month = Feb 28/29), which is the convention the
// scenario timeframe contract requires.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month (1-12) of year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// AddMonths returns d shifted by k calendar months, clamping the day to the
// last day of the target month. k may be negative.
func AddMonths(d Date, k int) Date {
	month := int(d.Month) - 1 + k
	year := d.Year + month/12
	month = month % 12
	if month < 0 {
		month += 12
		year--
	}
	out := Date{Year: year, Month: time.Month(month + 1), Day: d.Day}
	if max := DaysInMonth(out.Year, int(out.Month)); out.Day > max {
		out.Day = max
	}
	return out
}

// Date is a civil date (no time-of-day, no location) with YYYY-MM-DD JSON
// encoding. The engine never reads wall-clock time; dates only label periods.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string. An empty string or null leaves
// the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
