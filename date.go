// Package datesort orders calendar dates so that dates in months whose
// English name contains an 'r' come first, earliest first, followed by
// the remaining dates, latest first.
package datesort

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned (wrapped) for every malformed date.
var ErrInvalidDate = errors.New("invalid date")

// DefaultLayout is the time layout used to print dates.
const DefaultLayout = "2006-01-02"

const (
	minYear = 0
	maxYear = 9999
)

// CalendarDate is a year, month and day on the proleptic Gregorian
// calendar. Two CalendarDates are the same date iff they are ==.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for year, month and day,
// checking that the day exists in that month.
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	if year < minYear || year > maxYear {
		return CalendarDate{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < time.January || month > time.December {
		return CalendarDate{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, fmt.Errorf("%w: no day %d in %v %d", ErrInvalidDate, day, month, year)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// ParseCalendarDate parses a date in the form YYYY-MM-DD.
func ParseCalendarDate(s string) (CalendarDate, error) {
	if !numericDate(s) {
		return CalendarDate{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])
	return NewCalendarDate(year, time.Month(month), day)
}

func numericDate(s string) bool {
	if len(s) != len(DefaultLayout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}

// MustParseCalendarDate is like ParseCalendarDate but panics on error.
func MustParseCalendarDate(s string) CalendarDate {
	d, err := ParseCalendarDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Of returns the date part of t in t's location. Times before year 0
// are treated as 0000-01-01 and times after year 9999 as 9999-12-31.
func Of(t time.Time) CalendarDate {
	y, m, d := t.Date()
	switch {
	case y < minYear:
		return CalendarDate{Year: minYear, Month: time.January, Day: 1}
	case y > maxYear:
		return CalendarDate{Year: maxYear, Month: time.December, Day: 31}
	}
	return CalendarDate{Year: y, Month: m, Day: d}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC on d.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Format formats d using a time layout.
func (d CalendarDate) Format(layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}
	return d.Time().Format(layout)
}

// EpochDay returns the number of days between 1970-01-01 and d,
// negative for earlier dates.
func (d CalendarDate) EpochDay() int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	if m <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	mp := m - 3
	if m <= 2 {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + int64(d.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch a, b := d.EpochDay(), o.EpochDay(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether d is earlier than o.
func (d CalendarDate) Before(o CalendarDate) bool {
	return d.Compare(o) < 0
}

// After reports whether d is later than o.
func (d CalendarDate) After(o CalendarDate) bool {
	return d.Compare(o) > 0
}

// MarshalText implements encoding.TextMarshaler.
func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *CalendarDate) UnmarshalText(text []byte) error {
	v, err := ParseCalendarDate(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d CalendarDate) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *CalendarDate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// IsLeap reports whether year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in month for year, or 0 for
// an out of range month.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeap(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// CalendarDateList is a list of dates that prints as a comma separated
// list.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains reports whether d is in cdl.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}
