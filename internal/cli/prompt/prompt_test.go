package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	catlogerrors "github.com/thoreinstein/catlog/internal/errors"
)

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"filename with newline", "filename.txt\n", "filename.txt"},
		{"empty line", "\n", ""},
		{"windows line ending", "notes.md\r\n", "notes.md"},
		{"surrounding whitespace", "  spaced.txt \t\n", "spaced.txt"},
		{"no trailing newline", "last.txt", "last.txt"},
		{"only first line consumed", "first.txt\nsecond.txt\n", "first.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := NewPrompterWithIO(strings.NewReader(tt.input), &out)

			got, err := p.Line("Enter the filename: ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
			if out.String() != "Enter the filename: " {
				t.Errorf("prompt = %q, want %q", out.String(), "Enter the filename: ")
			}
		})
	}
}

func TestLine_SuccessiveCalls(t *testing.T) {
	t.Parallel()

	p := NewPrompterWithIO(strings.NewReader("one\ntwo\n"), io.Discard)

	first, err := p.Line("")
	if err != nil || first != "one" {
		t.Fatalf("first Line() = %q, %v", first, err)
	}
	second, err := p.Line("")
	if err != nil || second != "two" {
		t.Fatalf("second Line() = %q, %v", second, err)
	}
	if _, err := p.Line(""); !errors.Is(err, ErrInputClosed) {
		t.Errorf("third Line() error = %v, want ErrInputClosed", err)
	}
}

func TestLine_EOF(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPrompterWithIO(strings.NewReader(""), &out)

	_, err := p.Line("> ")
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("expected ErrInputClosed, got %v", err)
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestLine_ReadError(t *testing.T) {
	t.Parallel()

	p := NewPrompterWithIO(brokenReader{}, io.Discard)

	_, err := p.Line("> ")
	var ioErr *catlogerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
	if ioErr.Kind != catlogerrors.IOUnexpectedEOF {
		t.Errorf("Kind = %v, want unexpected-eof", ioErr.Kind)
	}
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := NewPrompterWithIO(strings.NewReader(tt.input), &out)

			if got := p.Confirm("Overwrite?"); got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if out.String() != "Overwrite? [y/N] " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}
