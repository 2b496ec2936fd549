package datesort

import (
	"strings"
)

func date(layout string, d CalendarDate) string {
	return d.Format(layout)
}

func rmonth(d CalendarDate) bool {
	return d.MonthHasLetterR()
}

func epochDay(d CalendarDate) int64 {
	return d.EpochDay()
}

// funcMap is referenced by reportTemplate during package variable
// initialization, so it cannot be filled in by init.
var funcMap = map[string]interface{}{
	"date":     date,
	"epochDay": epochDay,
	"rmonth":   rmonth,
	"upper":    strings.ToUpper,
}
