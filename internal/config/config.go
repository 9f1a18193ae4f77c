package config

import (
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/catlog/internal/errors"
	"github.com/thoreinstein/catlog/internal/logging"
	"github.com/thoreinstein/catlog/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CATLOG"

// Config represents the top-level configuration structure.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log" toml:"log" json:"log"`
	Output OutputConfig `mapstructure:"output" yaml:"output" toml:"output" json:"output"`
	Prompt PromptConfig `mapstructure:"prompt" yaml:"prompt" toml:"prompt" json:"prompt"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level        string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Output       string `mapstructure:"output" yaml:"output" toml:"output" json:"output"`
	Format       string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`
	MirrorStderr bool   `mapstructure:"mirror_stderr" yaml:"mirror_stderr" toml:"mirror_stderr" json:"mirror_stderr"`
}

// OutputConfig controls the fixed-string file writer.
type OutputConfig struct {
	Path    string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
	Content string `mapstructure:"content" yaml:"content" toml:"content" json:"content"`
}

// PromptConfig controls the filename prompt.
type PromptConfig struct {
	Text string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
}

// Defaults.
const (
	DefaultLogLevel      = "warn"
	DefaultLogOutput     = "stderr"
	DefaultLogFormat     = string(logging.FormatText)
	DefaultOutputPath    = "output.txt"
	DefaultOutputContent = "Hello, world!"
	DefaultPromptText    = "Enter the filename: "
)

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Output: DefaultLogOutput,
			Format: DefaultLogFormat,
		},
		Output: OutputConfig{
			Path:    DefaultOutputPath,
			Content: DefaultOutputContent,
		},
		Prompt: PromptConfig{
			Text: DefaultPromptText,
		},
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Any previous Viper state, including an explicit config file, is discarded.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.ConfigFileName)
	viper.AddConfigPath(paths.AppConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.output", d.Log.Output)
	viper.SetDefault("log.format", d.Log.Format)
	viper.SetDefault("log.mirror_stderr", d.Log.MirrorStderr)
	viper.SetDefault("output.path", d.Output.Path)
	viper.SetDefault("output.content", d.Output.Content)
	viper.SetDefault("prompt.text", d.Prompt.Text)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, it searches the default location and falls
// back to defaults when nothing is found.
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path != "" && (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file not found at %s", path)
		case errors.As(err, &notFound):
			// Implicit load: defaults are fine
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// Used returns the path of the config file that was read, or "" when only
// defaults and environment variables are in effect.
func Used() string {
	return viper.ConfigFileUsed()
}

// Logging converts the log section into a logging configuration.
func (c *Config) Logging() (*logging.Configuration, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	dest, err := logging.ParseDestination(c.Log.Output)
	if err != nil {
		return nil, err
	}

	lc := logging.NewConfiguration(level, dest)
	lc.SetFormat(logging.Format(strings.ToLower(c.Log.Format)))
	lc.SetMirrorStderr(c.Log.MirrorStderr)
	return lc, nil
}
