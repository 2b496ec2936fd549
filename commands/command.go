package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
)

type Command struct {
	Name        string
	Description string
	Args        func(*flag.FlagSet)
	Run         func(out io.Writer, args []string) error
}

var (
	description string
	commands    map[string]*Command
)

func addCommand(cmd *Command) {
	commands[cmd.Name] = cmd
}

func loadCommands() {
	description = `Sorts dates: months with an 'r' first and ascending, the rest descending`
	commands = make(map[string]*Command)
	addCommand(helpCommand)
	addCommand(serveCommand)
	addCommand(sortCommand)
	addCommand(watchCommand)
}

func printHelp(w io.Writer, prog string) {
	fmt.Fprintf(w, "usage: %s COMMAND\n", prog)
	fmt.Fprintf(w, "\n%s\n", description)
	fmt.Fprintf(w, "\navailable commands\n")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "   %-12s %s\n", name, commands[name].Description)
	}
}

func createUsage(w io.Writer, prog string, cmd *Command, fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(w, "usage: %s %s [OPTIONS]\n", prog, cmd.Name)
		fmt.Fprintf(w, "\n%s\n", cmd.Description)
		fmt.Fprintf(w, "\navailable options\n")
		fs.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(w, "   --%-20s %s\n", f.Name, f.Usage)
		})
	}
}

// Main runs the command named by args[1] and returns the process exit
// code.
func Main(args []string, stdout, stderr io.Writer) int {
	loadCommands()
	prog := "datesort"
	if len(args) > 0 {
		prog = args[0]
	}

	if len(args) <= 1 {
		printHelp(stderr, prog)
		return 2
	}

	name := args[1]
	cmd, ok := commands[name]
	if !ok {
		printHelp(stderr, prog)
		return 2
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = createUsage(stderr, prog, cmd, fs)
	cmd.Args(fs)

	err := fs.Parse(args[2:])
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		return 2
	}

	err = cmd.Run(stdout, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	return 0
}

func Run() {
	os.Exit(Main(os.Args, os.Stdout, os.Stderr))
}
