// Package editor shells out to the user's text editor, used to review an
// exported content file before committing it to the site repository.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Opener locates and launches the preferred editor.
type Opener struct{}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Command returns an exec.Cmd opening path in the editor, wired to the
// current terminal so it can be handed to bubbletea's ExecProcess.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	name := o.findEditor()
	if name == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR")
	}

	cmd := exec.Command(name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (o *Opener) findEditor() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	for _, candidate := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return ""
}
