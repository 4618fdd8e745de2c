// Package chooser implements the interactive menu used to confirm every
// mutating step. It renders a small fixed set of options on a single line,
// rewritten in place after each keypress.
package chooser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/astinowak-wq/LinkZero-sub000/internal/input"
)

// ErrCancelled is returned when the user aborts the whole run at a prompt.
// It is distinct from selecting "No": the run must stop with a non-zero
// exit and no further actions may be prompted.
var ErrCancelled = errors.New("cancelled by user")

// TokenReader yields decoded key events. *input.Decoder satisfies it.
type TokenReader interface {
	Next() (input.Token, error)
}

// Chooser drives N-option selection prompts from a shared input source.
type Chooser struct {
	source *input.Source
	out    *termenv.Output
	tokens TokenReader // test seam; when set, raw mode is skipped
}

// Option configures a Chooser.
type Option func(*Chooser)

// WithTokenReader injects a scripted token source and disables raw-mode
// acquisition. Used by tests.
func WithTokenReader(r TokenReader) Option {
	return func(c *Chooser) {
		c.tokens = r
	}
}

// WithOutput redirects menu rendering (default: stdout).
func WithOutput(w io.Writer) Option {
	return func(c *Chooser) {
		c.out = termenv.NewOutput(w)
	}
}

// New creates a chooser reading from the run's resolved input source.
func New(source *input.Source, opts ...Option) *Chooser {
	c := &Chooser{
		source: source,
		out:    termenv.NewOutput(os.Stdout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Choose presents question with the given options, highlights the current
// selection, and returns the confirmed index.
//
// Transitions: Left/Right/Up/Down cycle the selection, Enter confirms,
// Quit returns ErrCancelled, anything else re-renders and waits. When no
// interactive channel is available the safe default is returned at once,
// without blocking.
func (c *Chooser) Choose(question string, options []string, safeDefault int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("choose: no options")
	}
	if safeDefault < 0 || safeDefault >= len(options) {
		safeDefault = len(options) - 1
	}

	tokens := c.tokens
	if tokens == nil {
		if !c.source.Available() {
			c.renderResolved(question, options, safeDefault)
			return safeDefault, nil
		}

		raw, err := input.EnterRaw(c.source, c.out)
		if err != nil {
			// Cannot take the terminal: behave like a missing device.
			c.renderResolved(question, options, safeDefault)
			return safeDefault, nil
		}
		defer raw.Restore()

		tokens = input.NewDecoder(c.source)
	}

	selected := 0
	for {
		c.render(question, options, selected)

		tok, err := tokens.Next()
		if err != nil || tok == input.None {
			// Input device gone mid-prompt: fall back to the safe default.
			c.finishLine()
			fmt.Fprintf(c.out, "%s %s\r\n", question, options[safeDefault])
			return safeDefault, nil
		}

		switch tok {
		case input.Left, input.Up:
			selected = (selected + len(options) - 1) % len(options)
		case input.Right, input.Down:
			selected = (selected + 1) % len(options)
		case input.Enter:
			c.finishLine()
			// Raw mode is still active here, so end the line with CR+LF.
			fmt.Fprintf(c.out, "%s %s\r\n", question, options[selected])
			return selected, nil
		case input.Quit:
			c.finishLine()
			return 0, ErrCancelled
		default:
			// Other: no transition, re-render and wait.
		}
	}
}

// render rewrites the menu in place so it always occupies one line.
func (c *Chooser) render(question string, options []string, selected int) {
	var b strings.Builder
	b.WriteString("\r")
	fmt.Fprintf(&b, "%s ", question)
	for i, opt := range options {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == selected {
			b.WriteString(c.out.String("▸ " + opt).Bold().Reverse().String())
		} else {
			b.WriteString("  " + opt)
		}
	}
	c.out.WriteString(b.String())
	c.out.ClearLineRight()
}

// renderResolved prints the final, non-interactive form of the prompt so
// the transcript shows what was decided even without a device.
func (c *Chooser) renderResolved(question string, options []string, selected int) {
	fmt.Fprintf(c.out, "%s %s\n", question, options[selected])
}

func (c *Chooser) finishLine() {
	c.out.WriteString("\r")
	c.out.ClearLineRight()
}
