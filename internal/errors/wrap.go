package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// New returns an error with a stack trace attached.
func New(msg string) error { return crdb.New(msg) }

// Newf formats an error message and attaches a stack trace.
func Newf(format string, args ...any) error { return crdb.Newf(format, args...) }

// Wrap annotates err with msg. It returns nil when err is nil.
func Wrap(err error, msg string) error { return crdb.Wrap(err, msg) }

// Wrapf annotates err with a formatted message. It returns nil when err is nil.
func Wrapf(err error, format string, args ...any) error {
	return crdb.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return crdb.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return crdb.As(err, target) }

// Unwrap returns the next error in err's chain, or nil.
func Unwrap(err error) error { return crdb.UnwrapOnce(err) }

// Mark returns err unchanged in message, but Is(result, reference) reports
// true. Use it to tag an error with a sentinel without altering its text.
func Mark(err, reference error) error { return crdb.Mark(err, reference) }

// Join returns an error wrapping every non-nil err, or nil if there are none.
func Join(errs ...error) error { return crdb.Join(errs...) }
