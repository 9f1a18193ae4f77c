package errors

import (
	"io"
	"io/fs"
	"os"
	"syscall"
)

// IOKind classifies a file system or stream failure.
type IOKind int

// I/O failure kinds.
const (
	IOOther IOKind = iota
	IONotFound
	IOPermissionDenied
	IOInvalidInput
	IOUnexpectedEOF
	IOBrokenPipe
	IOWouldBlock
	IOTimedOut
	IOInterrupted
)

// String returns a short, stable name for the kind.
func (k IOKind) String() string {
	switch k {
	case IONotFound:
		return "not-found"
	case IOPermissionDenied:
		return "permission-denied"
	case IOInvalidInput:
		return "invalid-input"
	case IOUnexpectedEOF:
		return "unexpected-eof"
	case IOBrokenPipe:
		return "broken-pipe"
	case IOWouldBlock:
		return "would-block"
	case IOTimedOut:
		return "timed-out"
	case IOInterrupted:
		return "interrupted"
	default:
		return "other"
	}
}

// Operations recorded on an IOError.
const (
	OpOpen   = "open"
	OpRead   = "read"
	OpCreate = "create"
	OpWrite  = "write"
)

// IOError is a classified file system failure.
type IOError struct {
	Op   string
	Path string
	Kind IOKind
	Err  error
}

// NewIOError classifies err and records the operation and path it came from.
// It returns nil when err is nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{
		Op:   op,
		Path: path,
		Kind: ClassifyIO(err),
		Err:  err,
	}
}

// Error renders a message specific to the failure kind.
func (e *IOError) Error() string {
	return e.prefix() + ": " + e.Err.Error()
}

func (e *IOError) prefix() string {
	switch e.Kind {
	case IONotFound:
		return "File not found"
	case IOPermissionDenied:
		return "Permission denied"
	case IOInvalidInput:
		return "Invalid input or invalid path"
	case IOUnexpectedEOF:
		return "Unexpected end of file"
	case IOBrokenPipe:
		return "Broken pipe"
	case IOWouldBlock:
		return "Operation would block"
	case IOTimedOut:
		return "Operation timed out"
	case IOInterrupted:
		return "Operation interrupted"
	}

	switch e.Op {
	case OpOpen:
		return "Error opening file"
	case OpRead:
		return "Error reading line"
	default:
		return "Error writing file"
	}
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ClassifyIO maps an error from the os, io or syscall packages onto an IOKind.
func ClassifyIO(err error) IOKind {
	if err == nil {
		return IOOther
	}

	var timeout interface{ Timeout() bool }
	switch {
	case Is(err, os.ErrDeadlineExceeded):
		return IOTimedOut
	// syscall.Errno reports EAGAIN as a timeout, so it is checked first.
	case Is(err, syscall.EAGAIN):
		return IOWouldBlock
	case As(err, &timeout) && timeout.Timeout():
		return IOTimedOut
	case Is(err, fs.ErrNotExist):
		return IONotFound
	case Is(err, fs.ErrPermission):
		return IOPermissionDenied
	case Is(err, io.ErrUnexpectedEOF):
		return IOUnexpectedEOF
	case Is(err, syscall.EPIPE):
		return IOBrokenPipe
	case Is(err, syscall.EINTR):
		return IOInterrupted
	case Is(err, fs.ErrInvalid),
		Is(err, syscall.EINVAL),
		Is(err, syscall.ENAMETOOLONG):
		return IOInvalidInput
	}
	return IOOther
}
