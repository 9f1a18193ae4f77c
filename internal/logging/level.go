package logging

import (
	"log/slog"
	"strings"

	"github.com/thoreinstein/catlog/internal/errors"
)

// Level is a verbosity level. Its values are slog levels, so a Level can be
// passed anywhere a [slog.Leveler] is accepted.
type Level slog.Level

// Verbosity levels, from most severe to most verbose.
const (
	LevelError = Level(slog.LevelError)
	LevelWarn  = Level(slog.LevelWarn)
	LevelInfo  = Level(slog.LevelInfo)
	LevelDebug = Level(slog.LevelDebug)
	// LevelTrace sits below slog's Debug level.
	LevelTrace = Level(slog.LevelDebug - 4)
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("unknown log level")

// Levels returns every verbosity level ordered from most to least severe.
func Levels() []Level {
	return []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}
}

// String returns the display token for the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	}
	return slog.Level(l).String()
}

// Level implements slog.Leveler.
func (l Level) Level() slog.Level {
	return slog.Level(l)
}

// LevelOf buckets an arbitrary slog level into the nearest verbosity level at
// or below it, so slog.LevelInfo+2 reports as LevelInfo.
func LevelOf(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return LevelError
	case l >= slog.LevelWarn:
		return LevelWarn
	case l >= slog.LevelInfo:
		return LevelInfo
	case l >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "err":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelWarn, errors.Wrapf(ErrUnknownLevel, "%q (valid: error, warn, info, debug, trace)", s)
}

// LevelFromVerbosity converts a -v count into a level.
// 0 is Warn, 1 is Info, 2 is Debug and anything higher is Trace.
func LevelFromVerbosity(v int) Level {
	switch {
	case v <= 0:
		return LevelWarn
	case v == 1:
		return LevelInfo
	case v == 2:
		return LevelDebug
	default:
		return LevelTrace
	}
}
