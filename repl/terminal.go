package repl

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RunTerminal runs a styled session with line editing and history on the
// terminal behind in, restoring the terminal state on return.
func RunTerminal(config Config, in *os.File, out io.Writer) error {
	fd := int(in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("make raw terminal: %w", err)
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, config.Prompt)

	if w, h, err := term.GetSize(fd); err == nil {
		t.SetSize(w, h)
	}

	config.Styled = true
	return NewSession(config, t, t).Run()
}

// RunPlain runs an unstyled session over arbitrary streams.
func RunPlain(config Config, in io.Reader, out io.Writer) error {
	config.Styled = false
	return NewSession(config, NewScannerReader(in, out, config.Prompt), out).Run()
}
