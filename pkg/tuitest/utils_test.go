package tuitest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1;32mok\x1b[0m   \n\x1b[31mfail\x1b[0m\n\n"
	assert.Equal(t, "ok\nfail", StripANSI(in))
}

func TestLines(t *testing.T) {
	in := "  \x1b[1mfile.name\x1b[0m  200  \n\n   note.status 100\n"
	assert.Equal(t, []string{"file.name  200", "note.status 100"}, Lines(in))
}
