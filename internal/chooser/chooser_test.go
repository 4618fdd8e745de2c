package chooser_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astinowak-wq/LinkZero-sub000/internal/chooser"
	"github.com/astinowak-wq/LinkZero-sub000/internal/input"
)

type tokenScript struct {
	tokens []input.Token
}

func (s *tokenScript) Next() (input.Token, error) {
	if len(s.tokens) == 0 {
		return input.None, nil
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok, nil
}

func newTestChooser(tokens ...input.Token) (*chooser.Chooser, *bytes.Buffer) {
	var buf bytes.Buffer
	c := chooser.New(new(input.Source),
		chooser.WithTokenReader(&tokenScript{tokens: tokens}),
		chooser.WithOutput(&buf),
	)
	return c, &buf
}

var yesNo = []string{"Yes", "No"}

func TestToggleIsCyclic(t *testing.T) {
	tests := []struct {
		name   string
		tokens []input.Token
		want   int
	}{
		{"enter keeps initial selection", []input.Token{input.Enter}, 0},
		{"right moves to second", []input.Token{input.Right, input.Enter}, 1},
		{"left wraps to second", []input.Token{input.Left, input.Enter}, 1},
		{"two rights wrap back", []input.Token{input.Right, input.Right, input.Enter}, 0},
		{"two lefts wrap back", []input.Token{input.Left, input.Left, input.Enter}, 0},
		{"down acts like right", []input.Token{input.Down, input.Enter}, 1},
		{"up acts like left", []input.Token{input.Up, input.Enter}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestChooser(tt.tokens...)
			got, err := c.Choose("Apply change?", yesNo, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThreeOptionCycle(t *testing.T) {
	options := []string{"Yes", "No", "Always"}

	c, _ := newTestChooser(input.Right, input.Right, input.Right, input.Enter)
	got, err := c.Choose("Pick", options, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, got, "three rights over three options must wrap to the start")
}

func TestOtherTokensAreIgnored(t *testing.T) {
	c, _ := newTestChooser(input.Other, input.Other, input.Right, input.Other, input.Enter)
	got, err := c.Choose("Apply change?", yesNo, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestQuitCancelsRun(t *testing.T) {
	c, _ := newTestChooser(input.Right, input.Quit)
	_, err := c.Choose("Apply change?", yesNo, 1)
	assert.ErrorIs(t, err, chooser.ErrCancelled)
}

func TestExhaustedInputFallsBackToDefault(t *testing.T) {
	// The scripted reader returns None once drained, like a vanished device.
	c, _ := newTestChooser(input.Right)
	got, err := c.Choose("Apply change?", yesNo, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestNoDeviceResolvesToSafeDefaultWithoutBlocking(t *testing.T) {
	var buf bytes.Buffer
	c := chooser.New(new(input.Source), chooser.WithOutput(&buf))

	done := make(chan struct{})
	var got int
	var err error
	go func() {
		got, err = c.Choose("Restart service?", yesNo, 1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Choose blocked with no input device")
	}
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Contains(t, buf.String(), "Restart service? No")
}

func TestOutOfRangeDefaultClamps(t *testing.T) {
	var buf bytes.Buffer
	c := chooser.New(new(input.Source), chooser.WithOutput(&buf))

	got, err := c.Choose("Apply change?", yesNo, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestEmptyOptions(t *testing.T) {
	c, _ := newTestChooser(input.Enter)
	_, err := c.Choose("Apply change?", nil, 0)
	assert.Error(t, err)
}

func TestRenderRewritesInPlace(t *testing.T) {
	c, buf := newTestChooser(input.Right, input.Enter)
	_, err := c.Choose("Apply change?", yesNo, 1)
	require.NoError(t, err)

	out := buf.String()
	// Every redraw starts with a carriage return so the menu occupies a
	// constant number of lines.
	assert.GreaterOrEqual(t, bytes.Count([]byte(out), []byte("\r")), 2)
	assert.Contains(t, out, "Apply change?")
}
