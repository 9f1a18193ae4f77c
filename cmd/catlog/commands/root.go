// Package commands implements the CLI commands for catlog.
package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/catlog/cmd"
	"github.com/thoreinstein/catlog/internal/config"
	"github.com/thoreinstein/catlog/internal/errors"
	"github.com/thoreinstein/catlog/internal/logging"
	"github.com/thoreinstein/catlog/internal/cli/prompt"
	"github.com/thoreinstein/catlog/pkg/fileutil"
)

// cfgFile holds the value of the --config flag.
var cfgFile string

// appConfig is the loaded configuration. It is replaced on every run.
var appConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// closeLog releases the log destination opened by the last activation.
var closeLog func() error

// annotationConfigOptional marks commands that run with defaults when the
// config file is broken.
const annotationConfigOptional = "catlog/config-optional"

// annotationNoLogging marks commands that never activate logging, so they
// cannot truncate or create the configured log file.
const annotationNoLogging = "catlog/no-logging"

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/catlog/config.yaml)")
	addLoggingFlags(rootCmd)

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("catlog version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	appConfig, configLoadErr = config.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "catlog",
	Short: "Print a file and write a greeting, with configurable logging",
	Long: `catlog asks for a filename on standard input, prints that file line by
line to standard output. A fixed string is written to an output file as
soon as the filename has been read, before the file is opened.

Logging is configured once at startup. Records go to stderr at WARN and
above unless the config file, environment, or flags say otherwise.`,
	Example: `  # Prompt for a file, print it, write output.txt
  echo notes.txt | catlog

  # Same, logging everything to a file
  catlog --log-level trace --log-output catlog.log

  # Print a file chosen with the fuzzy finder
  catlog cat --pick

  See Also: catlog cat, catlog write, catlog config`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadedConfig(cmd); err != nil {
			return err
		}
		if _, ok := cmd.Annotations[annotationNoLogging]; ok {
			return nil
		}
		return setupLogging(cmd)
	},
	RunE: runRoot,
}

// loadedConfig reports a config load failure unless cmd tolerates one, in
// which case defaults are used.
func loadedConfig(cmd *cobra.Command) error {
	if configLoadErr == nil && appConfig != nil {
		return nil
	}
	if _, ok := cmd.Annotations[annotationConfigOptional]; ok || configLoadErr == nil {
		appConfig = config.Default()
		return nil
	}
	return errors.NewConfigError(configLoadErr)
}

// setupLogging activates process logging from config and flags and stores
// the logger in the command context.
func setupLogging(cmd *cobra.Command) error {
	lc, err := buildLoggingConfig(appConfig)
	if err != nil {
		return err
	}

	logger, closer, err := activateLogging(lc)
	if err != nil {
		return errors.NewSystemError(err, "Check that the log destination is writable")
	}
	closeLog = closer

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	logger.Debug("logging activated",
		"level", lc.Level(),
		"output", lc.Destination(),
		"config", config.Used())
	return nil
}

// activateLogging installs the process logger. It returns the logger and a
// function that releases its destination.
var activateLogging = func(lc *logging.Configuration) (*slog.Logger, func() error, error) {
	f, err := logging.Activate(lc)
	if err != nil {
		return nil, nil, err
	}
	return f.Logger(), f.Close, nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// The output file is written as soon as input has been read, even when
	// stdin was already closed, and before the named file is opened.
	name, readErr := newPrompter(cmd).Line(appConfig.Prompt.Text)
	if readErr != nil && !errors.Is(readErr, prompt.ErrInputClosed) {
		return commandError(readErr)
	}

	if err := fileutil.WriteFile(ctx, appConfig.Output.Path, appConfig.Output.Content); err != nil {
		return commandError(err)
	}
	if readErr != nil {
		return commandError(readErr)
	}

	if _, err := fileutil.PrintLines(ctx, cmd.OutOrStdout(), name); err != nil {
		return commandError(err)
	}
	return nil
}

// Execute runs the root command and releases the log destination.
// Errors cobra raises itself, such as unknown flags, become user errors.
func Execute() error {
	err := rootCmd.Execute()
	var exitErr *errors.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		err = errors.NewUserError(err, "Run 'catlog --help' for usage")
	}
	if closeLog != nil {
		if closeErr := closeLog(); closeErr != nil && err == nil {
			err = errors.NewSystemError(errors.Wrap(closeErr, "closing log file"), "")
		}
		closeLog = nil
	}
	return err
}
