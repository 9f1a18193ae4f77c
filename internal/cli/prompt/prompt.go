// Package prompt reads interactive input from the terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thoreinstein/catlog/internal/errors"
)

// Sentinel errors for prompts.
var (
	ErrInputClosed      = errors.New("input closed")
	ErrNoOptions        = errors.New("no options to select from")
	ErrInvalidSelection = errors.New("invalid selection")
)

// Prompter writes prompts to one stream and reads answers from another.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer

	// interactive enables the fuzzy finder in PickFile.
	interactive bool
	find        findFunc
}

// NewPrompter creates a Prompter on stdin and stdout. The fuzzy finder is
// used for file picking when stdin is a terminal.
func NewPrompter() *Prompter {
	p := NewPrompterWithIO(os.Stdin, os.Stdout)
	p.interactive = isTerminal(os.Stdin)
	return p
}

// NewPrompterWithIO creates a Prompter with a custom reader and writer.
// It never starts the fuzzy finder.
func NewPrompterWithIO(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
		find:   fuzzyFind,
	}
}

// Line prints prompt without a trailing newline and returns the next input
// line with surrounding whitespace removed. An empty line yields "".
//
// A final line without a newline is returned as-is; reaching EOF before any
// input returns ErrInputClosed.
func (p *Prompter) Line(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.writer, prompt)
	}

	input, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.NewIOError(errors.OpRead, "stdin", err)
		}
		if input == "" {
			return "", ErrInputClosed
		}
	}

	return strings.TrimSpace(input), nil
}

// Confirm asks a yes/no question. It returns true only for "y" or "yes"
// (case-insensitive); anything else, including EOF, is a no.
func (p *Prompter) Confirm(question string) bool {
	answer, err := p.Line(question + " [y/N] ")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
