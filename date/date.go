// Package date provides a calendar date value type with day-level
// granularity and the lenient parsing rules used by the sale ledger.
package date

import (
	"fmt"
	"time"
)

// Format is the format used to represent dates as strings in ISO-8601 format.
const Format = "2006-01-02" // write date format

// readFormats are tried in order when parsing. Historical ledger files
// carry day-first dates, newer ones ISO-8601.
var readFormats = []string{
	"2/1/2006",
	"02/01/2006",
	Format,
}

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0, or 1 depending on whether d is before, equal
// to, or after x. A zero date compares after any set date, so that
// records with unknown dates sort last.
func Compare(d, x Date) int {
	if d.IsZero() || x.IsZero() {
		switch {
		case d.IsZero() && x.IsZero():
			return 0
		case d.IsZero():
			return 1
		default:
			return -1
		}
	}
	return d.time().Compare(x.time())
}

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String formats the date in its standard ISO-8601 form.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date trying each accepted format in order: day-first
// with single or double digits ("5/3/2023", "05/03/2023"), then
// ISO-8601 ("2023-03-05").
func Parse(str string) (Date, error) {
	for _, format := range readFormats {
		on, err := time.Parse(format, str)
		if err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: want one of formats %q", str, readFormats)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
