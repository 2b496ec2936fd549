package datesort

import (
	"strings"
	"time"
)

var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// rMonths is indexed by time.Month; index 0 is unused.
var rMonths [13]bool

func init() {
	for i, name := range monthNames {
		rMonths[i+1] = strings.ContainsAny(name, "rR")
	}
}

// HasLetterR reports whether the English name of m contains an 'r'.
// It is false for months outside January..December.
func HasLetterR(m time.Month) bool {
	if m < time.January || m > time.December {
		return false
	}
	return rMonths[m]
}

// MonthHasLetterR reports whether d falls in an r-month.
func (d CalendarDate) MonthHasLetterR() bool {
	return HasLetterR(d.Month)
}
