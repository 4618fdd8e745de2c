package input

import (
	"os"

	"golang.org/x/term"
)

// Source is the single interactive input channel for a run. At most one
// Source is live at a time; the run owns it from Resolve until Close.
type Source struct {
	file  *os.File
	name  string
	owned bool // true when Resolve opened the handle itself
}

// Resolve picks the best available interactive channel, trying candidates
// in a fixed priority order: the controlling terminal, the process stdin
// (only when it is a terminal), then the system console. The first channel
// that opens as a terminal wins and is cached for the run.
//
// Resolve never fails: when no candidate works it returns a Source with
// Available() == false, and every downstream prompt must resolve to the
// safe default without blocking.
func Resolve() *Source {
	candidates := []struct {
		path  string
		open  func() (*os.File, bool)
		owned bool
	}{
		{path: "/dev/tty", open: func() (*os.File, bool) { return openTerminal("/dev/tty") }, owned: true},
		{path: "stdin", open: stdinTerminal, owned: false},
		{path: "/dev/console", open: func() (*os.File, bool) { return openTerminal("/dev/console") }, owned: true},
	}

	for _, c := range candidates {
		if f, ok := c.open(); ok {
			return &Source{file: f, name: c.path, owned: c.owned}
		}
	}
	return &Source{}
}

func openTerminal(path string) (*os.File, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	if !term.IsTerminal(int(f.Fd())) {
		f.Close()
		return nil, false
	}
	return f, true
}

func stdinTerminal() (*os.File, bool) {
	// Redirected stdin is not an interactive channel (Scenario: piped input
	// must never block on a prompt).
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, false
	}
	return os.Stdin, true
}

// Available reports whether an interactive channel was resolved.
func (s *Source) Available() bool {
	return s != nil && s.file != nil
}

// Name identifies the resolved channel, for logging.
func (s *Source) Name() string {
	if !s.Available() {
		return "none"
	}
	return s.name
}

// File exposes the underlying handle for raw-mode control and reading.
// It is nil when no channel is available.
func (s *Source) File() *os.File {
	if s == nil {
		return nil
	}
	return s.file
}

// Close releases the channel. It must run on every exit path (normal,
// cancelled, or erroring) and only closes handles Resolve opened itself,
// never the process stdin.
func (s *Source) Close() error {
	if !s.Available() || !s.owned {
		return nil
	}
	f := s.file
	s.file = nil
	return f.Close()
}
