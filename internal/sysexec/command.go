// Package sysexec runs the external tools that actually mutate the system
// (postconf, csf, systemctl, ...). Commands are built up front by the
// action builders and treated as opaque payloads by the pipeline.
package sysexec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Cmd is one executable unit with a boolean-success contract: Run returns
// nil on exit code zero and an error (with captured stderr) otherwise.
type Cmd struct {
	path string
	args []string
	env  []string
	dir  string
}

// New builds a command from an executable path and its arguments.
func New(path string, args ...string) *Cmd {
	return &Cmd{path: path, args: args}
}

// WithEnv appends KEY=VALUE pairs to the child environment.
func (c *Cmd) WithEnv(env map[string]string) *Cmd {
	for k, v := range env {
		c.env = append(c.env, fmt.Sprintf("%s=%s", k, v))
	}
	return c
}

// WithDir sets the working directory for the child process.
func (c *Cmd) WithDir(dir string) *Cmd {
	c.dir = dir
	return c
}

// Run executes the command, honoring ctx cancellation. Stderr is captured
// and folded into the returned error so failures are diagnosable from the
// log alone.
func (c *Cmd) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, c.path, c.args...)
	cmd.Dir = c.dir
	if len(c.env) > 0 {
		cmd.Env = append(cmd.Environ(), c.env...)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", c.path, err, msg)
		}
		return fmt.Errorf("%s: %w", c.path, err)
	}
	return nil
}

// String renders the literal command line for the audit trail.
func (c *Cmd) String() string {
	parts := make([]string, 0, len(c.args)+1)
	parts = append(parts, c.path)
	for _, a := range c.args {
		if strings.ContainsAny(a, " \t'\"") {
			parts = append(parts, fmt.Sprintf("%q", a))
		} else {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " ")
}
