package commands

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/jcomo/datesort"
)

var watchCommand *Command

var watchInput inputFlags

func watchArgs(fs *flag.FlagSet) {
	watchInput.register(fs)
}

func watchRun(out io.Writer, args []string) error {
	e, err := watchInput.engine(out, args, datesort.DemoDates())
	if err != nil {
		return err
	}

	err = e.Print(out)
	if err != nil {
		return err
	}

	closer, err := e.Watch()
	if err != nil {
		return err
	}

	defer closer.Close()
	log.Println("Watching for file changes...")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}

func init() {
	watchCommand = &Command{
		Name:        "watch",
		Description: "Prints the sorted dates again whenever the input changes",
		Args:        watchArgs,
		Run:         watchRun,
	}
}
