package main

import "github.com/jcomo/datesort/commands"

func main() {
	commands.Run()
}
