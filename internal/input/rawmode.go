package input

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// RawMode is the scoped raw-terminal resource for one prompt. Acquire with
// EnterRaw, release with Restore; Restore must run on every exit path.
type RawMode struct {
	fd    int
	state *term.State
	out   *termenv.Output
}

// EnterRaw switches the resolved channel into raw mode and hides the
// cursor. On an unavailable source it returns an inert RawMode whose
// Restore is a no-op, so callers can defer unconditionally.
func EnterRaw(s *Source, out *termenv.Output) (*RawMode, error) {
	if !s.Available() {
		return &RawMode{fd: -1}, nil
	}

	fd := int(s.File().Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode on %s: %w", s.Name(), err)
	}

	if out == nil {
		out = termenv.NewOutput(os.Stdout)
	}
	out.HideCursor()

	return &RawMode{fd: fd, state: state, out: out}, nil
}

// Restore returns the terminal to its previous mode and shows the cursor.
// Safe to call on an inert RawMode and safe to call more than once.
func (m *RawMode) Restore() {
	if m == nil || m.fd < 0 {
		return
	}
	if m.state != nil {
		_ = term.Restore(m.fd, m.state)
		m.state = nil
	}
	if m.out != nil {
		m.out.ShowCursor()
		m.out = nil
	}
	m.fd = -1
}
