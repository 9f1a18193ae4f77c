package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/thoreinstein/catlog/internal/errors"
)

// ErrAlreadyActivated is reported when Activate is called more than once.
var ErrAlreadyActivated = errors.New("logging already activated")

// ActivationError is returned by Activate when the process logger cannot be
// installed.
type ActivationError struct {
	Destination Destination
	Err         error
}

func (e *ActivationError) Error() string {
	if e.Destination == nil {
		return "activating logging: " + e.Err.Error()
	}
	return "activating logging to " + e.Destination.String() + ": " + e.Err.Error()
}

func (e *ActivationError) Unwrap() error {
	return e.Err
}

var (
	activationMu sync.Mutex
	activated    bool
)

// Facility is the handle to the activated process logger. The entry point
// owns it and hands Logger() to the components that log.
type Facility struct {
	logger *slog.Logger
	config Configuration
	file   *os.File
}

// Activate binds cfg to the process logger and installs it as the slog
// default. Only the first successful call in a process takes effect; later
// calls fail with ErrAlreadyActivated. File destinations are created or
// truncated without confirmation. A nil cfg activates Warn to stderr.
func Activate(cfg *Configuration) (*Facility, error) {
	if cfg == nil {
		cfg = NewConfiguration(LevelWarn, Stderr{})
	}

	activationMu.Lock()
	defer activationMu.Unlock()

	if activated {
		return nil, &ActivationError{Destination: cfg.Destination(), Err: ErrAlreadyActivated}
	}

	out, file, err := openDestination(cfg.Destination())
	if err != nil {
		return nil, &ActivationError{Destination: cfg.Destination(), Err: err}
	}

	handler := newHandler(cfg, out)
	if _, isFile := cfg.Destination().(File); isFile && cfg.MirrorStderr() {
		mirrorLevel := max(cfg.Level(), LevelWarn)
		handler = NewMultiHandler(handler, NewHandler(os.Stderr, handlerOptions(mirrorLevel)))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	activated = true

	return &Facility{
		logger: logger,
		config: *cfg,
		file:   file,
	}, nil
}

// openDestination resolves d to a writer. The returned file is non-nil only
// when the facility owns it.
func openDestination(d Destination) (io.Writer, *os.File, error) {
	switch d := d.(type) {
	case nil, Stderr:
		return os.Stderr, nil, nil
	case Stdout:
		return os.Stdout, nil, nil
	case File:
		f, err := os.OpenFile(d.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, errors.NewIOError(errors.OpCreate, d.Path, err)
		}
		return f, f, nil
	default:
		return nil, nil, errors.Newf("unsupported log destination %T", d)
	}
}

// Logger returns the activated logger.
func (f *Facility) Logger() *slog.Logger {
	return f.logger
}

// Configuration returns a copy of the configuration that was activated.
func (f *Facility) Configuration() Configuration {
	return f.config
}

// Close flushes and closes the log file, if the facility opened one.
// The logger stays installed; records logged afterwards are dropped by the
// closed file. Close is safe to call more than once.
func (f *Facility) Close() error {
	if f == nil || f.file == nil {
		return nil
	}
	file := f.file
	f.file = nil

	if err := file.Sync(); err != nil {
		file.Close()
		return errors.NewIOError(errors.OpWrite, file.Name(), err)
	}
	if err := file.Close(); err != nil {
		return errors.NewIOError(errors.OpWrite, file.Name(), err)
	}
	return nil
}
