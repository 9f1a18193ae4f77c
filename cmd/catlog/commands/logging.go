package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/catlog/internal/config"
	"github.com/thoreinstein/catlog/internal/errors"
	"github.com/thoreinstein/catlog/internal/logging"
)

// debugEnv raises the level when no level flag is given: 1 or true selects
// DEBUG, 2 selects TRACE.
const debugEnv = "CATLOG_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logLevel holds the value of the --log-level flag.
var logLevel string

// logOutput holds the value of the --log-output flag.
var logOutput string

// logFormat holds the value of the --log-format flag.
var logFormat string

func addLoggingFlags(c *cobra.Command) {
	c.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	c.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"only log errors")
	c.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: error, warn, info, debug, trace")
	c.PersistentFlags().StringVar(&logOutput, "log-output", "",
		"log destination: stdout, stderr, or a file path (use ./stdout for a file named stdout)")
	c.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json")
}

// buildLoggingConfig merges the logging flags over the config file settings.
// An explicit --log-level wins over -q and -v, which win over CATLOG_DEBUG.
func buildLoggingConfig(cfg *config.Config) (*logging.Configuration, error) {
	if quiet && verbosity > 0 {
		return nil, errors.NewUserError(
			errors.Mark(errors.New("cannot use --quiet and --verbose together"), errors.ErrInvalidFlag), "")
	}
	if cfg == nil {
		cfg = config.Default()
	}

	lc, err := cfg.Logging()
	if err != nil {
		return nil, errors.NewConfigError(err)
	}

	switch {
	case logLevel != "":
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return nil, flagError("--log-level", err)
		}
		lc.SetLevel(level)
	case quiet:
		lc.SetLevel(logging.LevelError)
	case verbosity > 0:
		lc.SetLevel(logging.LevelFromVerbosity(verbosity))
	default:
		if v, ok := os.LookupEnv(debugEnv); ok {
			switch v {
			case "1", "true":
				lc.SetLevel(logging.LevelDebug)
			case "2":
				lc.SetLevel(logging.LevelTrace)
			}
		}
	}

	if logOutput != "" {
		dest, err := logging.ParseDestination(logOutput)
		if err != nil {
			return nil, flagError("--log-output", err)
		}
		lc.SetDestination(dest)
	}

	if logFormat != "" {
		switch f := logging.Format(strings.ToLower(logFormat)); f {
		case logging.FormatText, logging.FormatJSON:
			lc.SetFormat(f)
		default:
			return nil, flagError("--log-format", errors.Newf("unknown format %q (valid: text, json)", logFormat))
		}
	}

	return lc, nil
}

func flagError(flag string, err error) error {
	return errors.NewUserError(
		errors.Mark(errors.Wrapf(err, "invalid %s", flag), errors.ErrInvalidFlag),
		"Run 'catlog --help' to see valid values")
}
