// Package paths resolves the directories catlog reads its configuration from.
//
// It wraps github.com/adrg/xdg so the config file follows the XDG Base
// Directory conventions on every platform:
//
//	paths.AppConfigDir() // ~/.config/catlog on Linux
//	paths.ConfigFile()   // ~/.config/catlog/config.yaml
//
// Setting CATLOG_CONFIG_DIR overrides the directory, which keeps tests and
// sandboxed runs away from the user's real configuration.
package paths
