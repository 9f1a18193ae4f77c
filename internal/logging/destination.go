package logging

import (
	"strings"

	"github.com/thoreinstein/catlog/internal/errors"
)

// Destination is where log records are written. It is one of [Stdout],
// [Stderr] or [File]; the set is closed.
type Destination interface {
	String() string
	isDestination()
}

// Stdout sends records to the process standard output.
type Stdout struct{}

// Stderr sends records to the process standard error.
type Stderr struct{}

// File sends records to a file that is created or truncated on activation.
type File struct {
	Path string
}

func (Stdout) isDestination() {}
func (Stderr) isDestination() {}
func (File) isDestination() {}

func (Stdout) String() string { return "stdout" }
func (Stderr) String() string { return "stderr" }
func (f File) String() string { return f.Path }

// ErrEmptyDestination is returned by ParseDestination for an empty string.
var ErrEmptyDestination = errors.New("log destination is empty")

// ParseDestination maps "stdout" (or "-") and "stderr" onto the console
// destinations, case-insensitively. Any other value is taken as a file path,
// so a file literally named stdout is reached as "./stdout".
func ParseDestination(s string) (Destination, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return nil, ErrEmptyDestination
	case "stdout", "-":
		return Stdout{}, nil
	case "stderr":
		return Stderr{}, nil
	}
	return File{Path: s}, nil
}
