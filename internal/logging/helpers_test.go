package logging

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

// resetActivation clears the once-per-process guard and restores the slog
// default when the test finishes.
func resetActivation(t *testing.T) {
	t.Helper()
	prev := slog.Default()

	activationMu.Lock()
	activated = false
	activationMu.Unlock()

	t.Cleanup(func() {
		activationMu.Lock()
		activated = false
		activationMu.Unlock()
		slog.SetDefault(prev)
	})
}

// redirectStd swaps *target (os.Stdout or os.Stderr) for a pipe. The returned
// function closes the write side and returns everything written.
func redirectStd(t *testing.T, target **os.File) func() string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := *target
	*target = w
	t.Cleanup(func() {
		*target = orig
		r.Close()
	})

	return func() string {
		t.Helper()
		w.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("reading pipe: %v", err)
		}
		return string(data)
	}
}
