package datesort_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcomo/datesort"
)

func TestPrinter(t *testing.T) {
	dates := datesort.SortDates(datesort.DemoDates())

	var out bytes.Buffer
	p := &datesort.Printer{}
	require.NoError(t, p.Print(&out, dates))
	assert.Equal(t, "2005-01-01\n2005-01-02\n2005-07-01\n2005-05-03\n", out.String())

	out.Reset()
	p = &datesort.Printer{Layout: "Jan 2, 2006"}
	require.NoError(t, p.Print(&out, dates[:1]))
	assert.Equal(t, "Jan 1, 2005\n", out.String())

	out.Reset()
	p = &datesort.Printer{Color: true}
	require.NoError(t, p.Print(&out, dates))
	assert.Contains(t, out.String(), "\x1b[")
	for _, d := range dates {
		assert.Contains(t, out.String(), d.String())
	}
	assert.Equal(t, len(dates), strings.Count(out.String(), "\n"))
}
