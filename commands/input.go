package commands

import (
	"flag"
	"io"

	"github.com/jcomo/datesort"
)

type inputFlags struct {
	config string
	input  string
	color  bool
}

func (f *inputFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.config, "config", datesort.DefaultConfigName, "The config file to read")
	fs.StringVar(&f.input, "input", "", "A date file, overrides the config's input")
	fs.BoolVar(&f.color, "color", false, "Color r-month and other dates differently")
}

// engine builds an engine from the flags and the positional date
// arguments.
func (f *inputFlags) engine(out io.Writer, args []string, fallback []datesort.CalendarDate) (*datesort.Engine, error) {
	dates := make([]datesort.CalendarDate, 0, len(args))
	for _, arg := range args {
		d, err := datesort.ParseCalendarDate(arg)
		if err != nil {
			return nil, err
		}

		dates = append(dates, d)
	}

	return datesort.NewEngine(datesort.Options{
		ConfigPath: f.config,
		InputPath:  f.input,
		Color:      f.color,
		Dates:      dates,
		Fallback:   fallback,
		Out:        out,
	})
}
