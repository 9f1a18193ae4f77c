package errors

import "strconv"

// Process exit codes.
const (
	ExitSuccess = 0
	ExitUser    = 1 // bad flags, config, or input
	ExitSystem  = 2 // I/O and other environment failures
)

// Sentinels shared across packages. Match them with Is.
var (
	ErrNotFound      = New("resource not found")
	ErrInvalidConfig = New("invalid configuration")
	ErrInvalidFlag   = New("invalid flag value")
)

// ExitError carries the exit code main should use for Err, and an optional
// hint printed under the error message.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError returns an ExitError with no suggestion. err may be nil.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError marks err as the user's to fix.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError marks err as an environment failure.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError is a user error pointing at the effective configuration.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: catlog config show")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit code " + strconv.Itoa(e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the code for err: ExitSuccess for nil, the code of the
// first ExitError in the chain, or ExitSystem.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}
