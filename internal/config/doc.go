// Package config loads catlog's settings with Viper.
//
// Settings come from, in increasing precedence: built-in defaults, the
// config file, and CATLOG_* environment variables. Command-line flags are
// applied on top by the command layer.
//
// # Configuration File
//
// The file is looked up as config.yaml (or config.toml, config.json) in
// paths.AppConfigDir(), normally ~/.config/catlog:
//
//	log:
//	  level: info            # error, warn, info, debug, trace
//	  output: catlog.log     # stdout, stderr, or a file path
//	  format: text           # text or json
//	  mirror_stderr: false   # copy WARN+ to stderr when logging to a file
//	output:
//	  path: output.txt
//	  content: Hello, world!
//	prompt:
//	  text: "Enter the filename: "
//
// # Environment
//
// Every key can be set from the environment with dots replaced by
// underscores, for example CATLOG_LOG_LEVEL=debug or CATLOG_OUTPUT_PATH=out.txt.
//
// # Loading
//
//	config.Init()
//	cfg, err := config.Load("") // search default locations
//	if err != nil {
//	    return err
//	}
//	logCfg, err := cfg.Logging()
package config
