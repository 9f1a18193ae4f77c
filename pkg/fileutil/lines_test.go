package fileutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	catlogerrors "github.com/thoreinstein/catlog/internal/errors"
	"github.com/thoreinstein/catlog/internal/logging"
)

// quietContext returns a context whose logger drops everything.
func quietContext(t *testing.T) context.Context {
	return logging.NewContext(t.Context(), logging.NewDiscard())
}

// logContext returns a context whose logger writes every level to buf.
func logContext(t *testing.T, buf *bytes.Buffer) context.Context {
	t.Helper()
	logger := logging.New(logging.NewConfiguration(logging.LevelTrace, nil), buf)
	return logging.NewContext(t.Context(), logger)
}

func TestPrintLines(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		want      string
		wantLines int
	}{
		{"simple", "alpha\nbeta\n", "alpha\nbeta\n", 2},
		{"no trailing newline", "alpha\nbeta", "alpha\nbeta\n", 2},
		{"crlf endings", "alpha\r\nbeta\r\n", "alpha\nbeta\n", 2},
		{"empty file", "", "", 0},
		{"blank lines kept", "a\n\n\nb\n", "a\n\n\nb\n", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "input.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			var out, logs bytes.Buffer
			n, err := PrintLines(logContext(t, &logs), &out, path)
			if err != nil {
				t.Fatalf("PrintLines() error = %v", err)
			}
			if n != tt.wantLines {
				t.Errorf("PrintLines() = %d lines, want %d", n, tt.wantLines)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestPrintLines_LongLine(t *testing.T) {
	// Longer than bufio.Scanner's default token limit
	long := strings.Repeat("x", 200*1024)
	path := filepath.Join(t.TempDir(), "long.txt")
	if err := os.WriteFile(path, []byte(long+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	n, err := PrintLines(quietContext(t), &out, path)
	if err != nil {
		t.Fatalf("PrintLines() error = %v", err)
	}
	if n != 1 || out.Len() != len(long)+1 {
		t.Errorf("got %d lines and %d bytes", n, out.Len())
	}
}

func TestPrintLines_Logging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, logs bytes.Buffer
	if _, err := PrintLines(logContext(t, &logs), &out, path); err != nil {
		t.Fatalf("PrintLines() error = %v", err)
	}

	output := logs.String()
	for _, want := range []string{
		"INFO  attempting to open file path=" + path,
		"TRACE line n=1 bytes=3",
		"TRACE line n=2 bytes=3",
		"DEBUG printed file path=" + path + " lines=2",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("logs missing %q:\n%s", want, output)
		}
	}
}

func TestPrintLines_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	var out bytes.Buffer
	_, err := PrintLines(quietContext(t), &out, path)

	var ioErr *catlogerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
	if ioErr.Op != catlogerrors.OpOpen || ioErr.Kind != catlogerrors.IONotFound {
		t.Errorf("IOError = {Op: %q, Kind: %v}, want {open, not-found}", ioErr.Op, ioErr.Kind)
	}
	if !strings.HasPrefix(err.Error(), "File not found: ") {
		t.Errorf("Error() = %q, want File not found prefix", err.Error())
	}
}

func TestPrintLines_Directory(t *testing.T) {
	var out bytes.Buffer
	_, err := PrintLines(quietContext(t), &out, t.TempDir())

	var ioErr *catlogerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
	if ioErr.Op != catlogerrors.OpRead {
		t.Errorf("Op = %q, want read", ioErr.Op)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestPrintLines_BrokenPipe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("data\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := PrintLines(quietContext(t), failingWriter{err: syscall.EPIPE}, path)

	var ioErr *catlogerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
	if ioErr.Kind != catlogerrors.IOBrokenPipe {
		t.Errorf("Kind = %v, want broken-pipe", ioErr.Kind)
	}
	if !strings.HasPrefix(err.Error(), "Broken pipe: ") {
		t.Errorf("Error() = %q", err.Error())
	}
}
