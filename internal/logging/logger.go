package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// LevelSuccess sits between Info and Warn so SUCCESS lines are emitted
// whenever INFO lines are.
const LevelSuccess = slog.Level(2)

// TimeLayout is the timestamp format used for every log line. Timestamps
// are always rendered in UTC.
const TimeLayout = "2006-01-02 15:04:05"

// New creates the application logger writing to w in the fixed
// "<UTC timestamp> [<LEVEL>] <message>" line format.
// It writes to Stderr when w is nil (to separate logs from the prompt UI).
func New(level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(&lineHandler{level: level, w: w, mu: &sync.Mutex{}})
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(&lineHandler{level: slog.Level(127), w: io.Discard, mu: &sync.Mutex{}})
}

// Success logs msg at the SUCCESS level.
func Success(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelSuccess, msg, args...)
}

// OpenLogFile opens path for appending, creating it with restrictive
// permissions if needed. Callers own the returned handle.
func OpenLogFile(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// lineHandler renders records as single plain-text lines. It intentionally
// avoids slog's key=value prefix machinery so the file output stays
// grep-able by operators.
type lineHandler struct {
	level slog.Level
	w     io.Writer
	attrs []slog.Attr
	mu    *sync.Mutex // shared across WithAttrs clones
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	b.WriteString(ts.UTC().Format(TimeLayout))
	b.WriteString(" [")
	b.WriteString(levelName(r.Level))
	b.WriteString("] ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		appendAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &lineHandler{level: h.level, w: h.w, attrs: merged, mu: h.mu}
}

func (h *lineHandler) WithGroup(string) slog.Handler {
	// Groups are not used by this application.
	return h
}

func appendAttr(b *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	// Standardize 'error' key to 'err'
	if key == "error" {
		key = "err"
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Resolve().Any())
}

func levelName(l slog.Level) string {
	switch {
	case l == LevelSuccess:
		return "SUCCESS"
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
