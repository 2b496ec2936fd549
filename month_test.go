package datesort_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcomo/datesort"
)

func TestHasLetterR(t *testing.T) {
	want := map[time.Month]bool{
		time.January:   true,
		time.February:  true,
		time.March:     true,
		time.April:     true,
		time.May:       false,
		time.June:      false,
		time.July:      false,
		time.August:    false,
		time.September: true,
		time.October:   true,
		time.November:  true,
		time.December:  true,
	}
	for m := time.January; m <= time.December; m++ {
		assert.Equal(t, want[m], datesort.HasLetterR(m), m.String())
		assert.Equal(t, strings.ContainsRune(strings.ToLower(m.String()), 'r'), datesort.HasLetterR(m), m.String())
	}

	assert.False(t, datesort.HasLetterR(0))
	assert.False(t, datesort.HasLetterR(13))

	assert.True(t, cd(2005, time.October, 9).MonthHasLetterR())
	assert.False(t, cd(2005, time.May, 9).MonthHasLetterR())
}
