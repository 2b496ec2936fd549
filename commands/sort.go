package commands

import (
	"errors"
	"flag"
	"io"

	"github.com/jcomo/datesort"
)

var sortCommand *Command

var (
	sortInput inputFlags
	sortCheck bool
)

func sortArgs(fs *flag.FlagSet) {
	sortInput.register(fs)
	fs.BoolVar(&sortCheck, "check", false, "Fail unless both sorting strategies agree")
}

func sortRun(out io.Writer, args []string) error {
	e, err := sortInput.engine(out, args, datesort.DemoDates())
	if err != nil {
		return err
	}

	if sortCheck && !datesort.Consistent(e.Dates()) {
		return errors.New("partitioned and composite orderings disagree")
	}

	return e.Print(out)
}

func init() {
	sortCommand = &Command{
		Name:        "sort",
		Description: "Sorts the given dates, or a sample list when there are none",
		Args:        sortArgs,
		Run:         sortRun,
	}
}
