package commands

import (
	"flag"
	"io"
)

var helpCommand *Command

func helpArgs(f *flag.FlagSet) {
}

func helpRun(out io.Writer, args []string) error {
	printHelp(out, "datesort")
	return nil
}

func init() {
	helpCommand = &Command{
		Name:        "help",
		Description: "Prints this help message and exits",
		Args:        helpArgs,
		Run:         helpRun,
	}
}
