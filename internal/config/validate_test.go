package config

import (
	"testing"

	"github.com/thoreinstein/catlog/internal/errors"
	"github.com/thoreinstein/catlog/internal/logging"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		field   string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: logging.ErrUnknownLevel,
			field:   "log.level",
		},
		{
			name:    "empty log output",
			mutate:  func(c *Config) { c.Log.Output = "" },
			wantErr: ErrEmptyValue,
			field:   "log.output",
		},
		{
			name:    "nul in log output",
			mutate:  func(c *Config) { c.Log.Output = "bad\x00.log" },
			wantErr: ErrInvalidPath,
			field:   "log.output",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Log.Format = "logfmt" },
			wantErr: ErrInvalidFormat,
			field:   "log.format",
		},
		{
			name:   "format is case-insensitive",
			mutate: func(c *Config) { c.Log.Format = "JSON" },
		},
		{
			name:    "empty output path",
			mutate:  func(c *Config) { c.Output.Path = "" },
			wantErr: ErrEmptyValue,
			field:   "output.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := Validate(cfg)
			if tt.field == "" {
				if len(errs) != 0 {
					t.Fatalf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}

			var fe *FieldError
			if !errors.As(errs[0], &fe) {
				t.Fatalf("error %T is not *FieldError", errs[0])
			}
			if fe.Field != tt.field {
				t.Errorf("Field = %q, want %q", fe.Field, tt.field)
			}
			if tt.wantErr != nil && !errors.Is(errs[0], tt.wantErr) {
				t.Errorf("error = %v, want %v", errs[0], tt.wantErr)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) = %v, want one error", errs)
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := &Config{}
	errs := Validate(cfg)
	// level, log.output, format, output.path
	if len(errs) != 4 {
		t.Errorf("Validate(empty) returned %d errors, want 4: %v", len(errs), errs)
	}
}

func TestFieldError_Error(t *testing.T) {
	err := &FieldError{Field: "log.format", Value: "xml", Err: ErrInvalidFormat}
	if got, want := err.Error(), "log.format: invalid log format: xml"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &FieldError{Field: "output.path", Err: ErrEmptyValue}
	if got, want := err.Error(), "output.path: value is required"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
