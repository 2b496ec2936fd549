package datesort

import (
	"io"

	"github.com/fatih/color"
)

// Printer writes dates one per line.
type Printer struct {
	Layout string
	Color  bool
}

func (p *Printer) Print(w io.Writer, dates []CalendarDate) error {
	rmonth := color.New(color.FgGreen)
	other := color.New(color.FgYellow)
	if p.Color {
		rmonth.EnableColor()
		other.EnableColor()
	} else {
		rmonth.DisableColor()
		other.DisableColor()
	}

	for _, d := range dates {
		chalk := other
		if d.MonthHasLetterR() {
			chalk = rmonth
		}

		_, err := chalk.Fprintln(w, d.Format(p.Layout))
		if err != nil {
			return err
		}
	}

	return nil
}
