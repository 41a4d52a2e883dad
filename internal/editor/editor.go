package editor

import (
	"os"
	"os/exec"
	"strings"
)

// Editor opens files in the user's editor.
type Editor struct {
	getenv func(string) string
}

// NewEditor creates an Editor that reads $VISUAL and $EDITOR.
func NewEditor() *Editor {
	return &Editor{getenv: os.Getenv}
}

// Resolve returns the editor command line to use.
// Order: $VISUAL > $EDITOR > vi
func (e *Editor) Resolve() []string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(e.getenv(key)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

// Open edits path in place and waits for the editor to exit.
func (e *Editor) Open(path string) error {
	args := e.Resolve()
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
