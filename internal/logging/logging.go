package logging

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

// New creates a logger that writes records allowed by cfg to w, without
// touching the process default. If w is nil, it defaults to os.Stderr; if
// cfg is nil, Warn-level text is used. The destination in cfg is ignored.
func New(cfg *Configuration, w io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = NewConfiguration(LevelWarn, Stderr{})
	}
	if w == nil {
		w = os.Stderr
	}
	return slog.New(newHandler(cfg, w))
}

func newHandler(cfg *Configuration, w io.Writer) slog.Handler {
	opts := handlerOptions(cfg.Level())

	switch cfg.Format() {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)
	default:
		return NewHandler(w, opts)
	}
}

func handlerOptions(level Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	}
}

// replaceAttr renders the built-in level attribute with the verbosity
// display token, so JSON output says "TRACE" instead of "DEBUG-4", and masks
// secret-looking attributes the same way the text Handler does.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(LevelOf(l).String())
		}
		return a
	}
	if a.Value.Kind() != slog.KindGroup && shouldMask(a.Key) {
		a.Value = slog.StringValue(maskValue(a.Value.String()))
	}
	return a
}

// NewDiscard creates a logger that discards all output.
// Use this for quiet mode or when logging should be suppressed.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// testWriter adapts testing.T to io.Writer for use with slog handlers.
type testWriter struct {
	t *testing.T
}

// Write implements io.Writer by logging to the test.
func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	// t.Log adds its own newline
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}

// ForTest creates a logger that writes to the test's log output.
// Log messages appear only when the test fails or when running with -v.
// The logger is configured at Trace level to capture all messages.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(NewConfiguration(LevelTrace, nil), &testWriter{t: t})
}
