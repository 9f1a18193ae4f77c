package config

import (
	"strings"

	"github.com/thoreinstein/catlog/internal/errors"
	"github.com/thoreinstein/catlog/internal/logging"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidFormat indicates log.format is neither text nor json.
	ErrInvalidFormat = errors.New("invalid log format")

	// ErrEmptyValue indicates a required field is empty.
	ErrEmptyValue = errors.New("value is required")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, &FieldError{Field: "log.level", Value: cfg.Log.Level, Err: err})
	}

	if strings.TrimSpace(cfg.Log.Output) == "" {
		errs = append(errs, &FieldError{Field: "log.output", Err: ErrEmptyValue})
	} else if err := validatePath(cfg.Log.Output); err != nil {
		errs = append(errs, &FieldError{Field: "log.output", Value: cfg.Log.Output, Err: err})
	}

	switch logging.Format(strings.ToLower(cfg.Log.Format)) {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, &FieldError{Field: "log.format", Value: cfg.Log.Format, Err: ErrInvalidFormat})
	}

	if cfg.Output.Path == "" {
		errs = append(errs, &FieldError{Field: "output.path", Err: ErrEmptyValue})
	} else if err := validatePath(cfg.Output.Path); err != nil {
		errs = append(errs, &FieldError{Field: "output.path", Value: cfg.Output.Path, Err: err})
	}

	return errs
}

// validatePath checks that a path string is well-formed.
// It does not check whether the path exists.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	return nil
}

// FieldError is a validation failure for one config key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
