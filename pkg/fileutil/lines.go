package fileutil

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/thoreinstein/catlog/internal/errors"
	"github.com/thoreinstein/catlog/internal/logging"
)

// PrintLines copies the file at path to w one line at a time and returns the
// number of lines written, logging through the logger carried by ctx.
// Every line is written with a "\n" terminator, including a final line that
// had none; "\r\n" endings become "\n".
//
// Failures are returned as *errors.IOError: op "open" when the file cannot be
// opened, "read" when reading it fails, and "write" when w rejects output.
func PrintLines(ctx context.Context, w io.Writer, path string) (int, error) {
	logger := logging.FromContext(ctx)
	logger.Info("attempting to open file", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return 0, errors.NewIOError(errors.OpOpen, path, err)
	}
	defer f.Close()

	traceLines := logger.Enabled(ctx, logging.LevelTrace.Level())

	reader := bufio.NewReader(f)
	out := bufio.NewWriter(w)
	count := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			out.Flush()
			return count, errors.NewIOError(errors.OpRead, path, readErr)
		}
		if line == "" {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if _, err := out.WriteString(line + "\n"); err != nil {
			return count, errors.NewIOError(errors.OpWrite, "output", err)
		}
		count++

		if traceLines {
			logger.Log(ctx, logging.LevelTrace.Level(), "line", "n", count, "bytes", len(line))
		}

		if readErr != nil {
			break
		}
	}

	if err := out.Flush(); err != nil {
		return count, errors.NewIOError(errors.OpWrite, "output", err)
	}

	logger.Debug("printed file", "path", path, "lines", count)
	return count, nil
}
