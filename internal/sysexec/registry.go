package sysexec

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is returned when a plan references a command name that
// is not on the allow-list.
var ErrNotRegistered = errors.New("command not registered")

// Registry is the allow-list of named commands available to plan files.
// Plans reference commands by name rather than by arbitrary argv, so a
// plan file cannot smuggle in executables the tool never vetted.
type Registry struct {
	commands map[string]*Cmd
}

// NewRegistry creates an empty allow-list.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Cmd)}
}

// Register adds a trusted command under name. Later registrations with the
// same name replace earlier ones.
func (r *Registry) Register(name string, path string, args ...string) {
	r.commands[name] = New(path, args...)
}

// Resolve returns the command registered under name, with extra args
// appended.
func (r *Registry) Resolve(name string, extraArgs ...string) (*Cmd, error) {
	base, ok := r.commands[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	args := make([]string, 0, len(base.args)+len(extraArgs))
	args = append(args, base.args...)
	args = append(args, extraArgs...)
	return &Cmd{path: base.path, args: args, env: base.env, dir: base.dir}, nil
}

// Names lists the registered command names (unordered).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	return names
}
