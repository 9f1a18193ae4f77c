package fileutil

import (
	"context"
	"os"

	"github.com/thoreinstein/catlog/internal/errors"
	"github.com/thoreinstein/catlog/internal/logging"
)

// WriteFile creates or truncates the file at path and writes content to it.
// A WARN record naming the path is logged before writing.
// Failures are returned as *errors.IOError with op "create" or "write".
func WriteFile(ctx context.Context, path, content string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.NewIOError(errors.OpCreate, path, err)
	}

	logging.FromContext(ctx).Warn("writing to file", "path", path)

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return errors.NewIOError(errors.OpWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return errors.NewIOError(errors.OpWrite, path, err)
	}
	return nil
}
