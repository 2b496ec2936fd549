package datesort

import "sort"

type sortKey struct {
	noR bool
	day int64
}

func (d CalendarDate) sortKey() sortKey {
	k := sortKey{noR: !d.MonthHasLetterR(), day: d.EpochDay()}
	if k.noR {
		k.day = -k.day
	}
	return k
}

// Less orders r-month dates before all other dates, r-month dates
// ascending and the rest descending.
func Less(a, b CalendarDate) bool {
	ak, bk := a.sortKey(), b.sortKey()
	if ak.noR != bk.noR {
		return !ak.noR
	}
	return ak.day < bk.day
}

type byRMonthOrder []CalendarDate

func (s byRMonthOrder) Len() int {
	return len(s)
}

func (s byRMonthOrder) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s byRMonthOrder) Less(i, j int) bool {
	return Less(s[i], s[j])
}

var _ sort.Interface = byRMonthOrder{}

type chronological []CalendarDate

func (s chronological) Len() int {
	return len(s)
}

func (s chronological) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s chronological) Less(i, j int) bool {
	return s[i].Before(s[j])
}

// SortDates returns a sorted copy of dates: dates in r-months earliest
// first, then all other dates latest first. dates is not modified.
func SortDates(dates []CalendarDate) []CalendarDate {
	sorted := make([]CalendarDate, len(dates))
	copy(sorted, dates)
	sort.Stable(byRMonthOrder(sorted))
	return sorted
}

// SortDatesPartitioned computes the same order as SortDates by splitting
// dates into r-months and the rest and sorting each group separately.
func SortDatesPartitioned(dates []CalendarDate) []CalendarDate {
	var rs, others []CalendarDate
	for _, d := range dates {
		if d.MonthHasLetterR() {
			rs = append(rs, d)
		} else {
			others = append(others, d)
		}
	}
	sort.Stable(chronological(rs))
	sort.Stable(sort.Reverse(chronological(others)))

	sorted := make([]CalendarDate, 0, len(dates))
	sorted = append(sorted, rs...)
	return append(sorted, others...)
}

// Consistent reports whether SortDates and SortDatesPartitioned agree
// on dates.
func Consistent(dates []CalendarDate) bool {
	a, b := SortDates(dates), SortDatesPartitioned(dates)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// DemoDates returns the fixed list sorted when no other input is given.
func DemoDates() []CalendarDate {
	return []CalendarDate{
		{Year: 2005, Month: 7, Day: 1},
		{Year: 2005, Month: 1, Day: 2},
		{Year: 2005, Month: 1, Day: 1},
		{Year: 2005, Month: 5, Day: 3},
	}
}
