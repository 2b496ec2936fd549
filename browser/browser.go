package browser

import (
	"os/exec"
	"runtime"
)

// command returns the program and arguments that open url on goos.
func command(goos, url string) (string, []string) {
	var args []string
	switch goos {
	case "darwin":
		args = []string{"open"}
	case "windows":
		args = []string{"cmd", "/c", "start"}
	default:
		args = []string{"xdg-open"}
	}

	return args[0], append(args[1:], url)
}

func Open(url string) error {
	prog, args := command(runtime.GOOS, url)
	return exec.Command(prog, args...).Start()
}
