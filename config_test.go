package datesort_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcomo/datesort"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := datesort.ReadConfig(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, datesort.DefaultConfig(), cfg)

	empty := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	cfg, err = datesort.ReadConfig(empty)
	require.NoError(t, err)
	assert.Equal(t, datesort.DefaultConfig(), cfg)

	full := filepath.Join(dir, "datesort.yml")
	require.NoError(t, os.WriteFile(full, []byte(`title: Release dates
input: dates.txt
format: "02 Jan 2006"
color: true
dates: [2005-07-01, 2005-05-03]
`), 0644))
	cfg, err = datesort.ReadConfig(full)
	require.NoError(t, err)
	assert.Equal(t, &datesort.Config{
		Title:  "Release dates",
		Input:  "dates.txt",
		Format: "02 Jan 2006",
		Color:  true,
		Dates:  []datesort.CalendarDate{cd(2005, time.July, 1), cd(2005, time.May, 3)},
	}, cfg)

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("dates: [2005-02-30]\n"), 0644))
	_, err = datesort.ReadConfig(bad)
	assert.ErrorIs(t, err, datesort.ErrInvalidDate)
}
