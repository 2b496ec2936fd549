package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand(t *testing.T) {
	for _, tc := range []struct {
		goos string
		prog string
		args []string
	}{
		{"darwin", "open", []string{"http://localhost:4000"}},
		{"windows", "cmd", []string{"/c", "start", "http://localhost:4000"}},
		{"linux", "xdg-open", []string{"http://localhost:4000"}},
		{"freebsd", "xdg-open", []string{"http://localhost:4000"}},
	} {
		prog, args := command(tc.goos, "http://localhost:4000")
		assert.Equal(t, tc.prog, prog, tc.goos)
		assert.Equal(t, tc.args, args, tc.goos)
	}
}
