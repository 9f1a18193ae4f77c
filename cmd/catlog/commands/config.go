package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/catlog/internal/config"
	"github.com/thoreinstein/catlog/internal/errors"
	"github.com/thoreinstein/catlog/internal/logging"
	"github.com/thoreinstein/catlog/internal/paths"
	"github.com/thoreinstein/catlog/pkg/fileutil"
)

// configShowFormat holds the value of config show --format.
var configShowFormat string

// configInitForce and configInitFormat hold config init's flags.
var (
	configInitForce  bool
	configInitFormat string
)

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "yaml",
		"output format: yaml, toml, json")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"overwrite an existing config file without asking")
	configInitCmd.Flags().StringVar(&configInitFormat, "format", "yaml",
		"file format: yaml, toml")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage catlog configuration",
	Long: `Manage catlog configuration stored in ~/.config/catlog/config.yaml.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show the effective configuration
  catlog config

  # Write a starter config file
  catlog config init

See Also: catlog config show, catlog config init`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after defaults, the config file and CATLOG_*
environment variables have been applied. Command-line flags are not
included.`,
	Example: `  # YAML (default)
  catlog config show

  # TOML or JSON
  catlog config show --format toml
  catlog config show --format json

See Also: catlog config init`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to the catlog config directory.

If a config file already exists you are asked before it is replaced,
unless --force is given.`,
	Example: `  # Create ~/.config/catlog/config.yaml
  catlog config init

  # Replace an existing file, as TOML
  catlog config init --force --format toml

See Also: catlog config show`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationConfigOptional: ""},
	RunE:        runConfigInit,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	data, err := marshalConfig(appConfig, configShowFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if used := config.Used(); used != "" {
		cmd.PrintErrf("# from %s\n", used)
	} else {
		cmd.PrintErrf("# no config file found; create %s with 'catlog config init'\n", paths.ConfigFile())
	}
	if _, err := out.Write(data); err != nil {
		return commandError(errors.NewIOError(errors.OpWrite, "output", err))
	}
	return nil
}

// marshalConfig renders cfg in the given format.
func marshalConfig(cfg *config.Config, format string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	default:
		return nil, flagError("--format", errors.Newf("unknown format %q (valid: yaml, toml, json)", format))
	}
	if err != nil {
		return nil, errors.NewSystemError(errors.Wrap(err, "marshaling config"), "")
	}
	return data, nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	var (
		ext   string
		write func(string, any) error
	)
	switch strings.ToLower(configInitFormat) {
	case "yaml", "yml":
		ext, write = "yaml", fileutil.AtomicWriteYAML
	case "toml":
		ext, write = "toml", fileutil.AtomicWriteTOML
	default:
		return flagError("--format", errors.Newf("unknown format %q (valid: yaml, toml)", configInitFormat))
	}

	dir := paths.AppConfigDir()
	path := paths.ConfigFileIn(dir, ext)

	if _, err := os.Stat(path); err == nil && !configInitForce {
		p := newPrompter(cmd)
		if !p.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := paths.EnsureDir(dir, paths.DefaultDirPerm); err != nil {
		return commandError(err)
	}

	logger.Debug("writing config file", "path", path)
	if err := write(path, config.Default()); err != nil {
		return commandError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
