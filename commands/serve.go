package commands

import (
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/jcomo/datesort"
	"github.com/jcomo/datesort/browser"
)

var serveCommand *Command

var (
	serveInput inputFlags
	serveHost  string
	servePort  int
	serveOpen  bool
	serveWatch bool
)

func serveArgs(fs *flag.FlagSet) {
	serveInput.register(fs)
	fs.StringVar(&serveHost, "host", "localhost", "The network interface to listen on")
	fs.IntVar(&servePort, "port", 4000, "The port to serve on")
	fs.BoolVar(&serveOpen, "open", false, "Open the report in a browser")
	fs.BoolVar(&serveWatch, "watch", false, "Watch for file changes")
}

func serveRun(out io.Writer, args []string) error {
	e, err := serveInput.engine(out, args, datesort.DemoDates())
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", serveHost, servePort)
	magenta := color.New(color.FgMagenta).SprintFunc()
	log.Printf("Serving sorted dates on %s!\n", magenta(addr))

	if serveWatch {
		closer, err := e.Watch()
		if err != nil {
			return err
		}

		log.Println("Watching for file changes...")
		defer closer.Close()
	}

	if serveOpen {
		go func() {
			time.Sleep(300 * time.Millisecond)
			err := browser.Open("http://" + addr)
			if err != nil {
				log.Println("open:", err)
			}
		}()
	}

	return e.Serve(addr)
}

func init() {
	serveCommand = &Command{
		Name:        "serve",
		Description: "Serves an HTML report and a sorting endpoint",
		Args:        serveArgs,
		Run:         serveRun,
	}
}
