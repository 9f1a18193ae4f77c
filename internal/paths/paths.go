package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG config home.
const AppName = "catlog"

// ConfigDirEnv overrides AppConfigDir when set.
const ConfigDirEnv = "CATLOG_CONFIG_DIR"

// ConfigFileName is the base name of the config file, without extension.
const ConfigFileName = "config"

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents.
// If perm is 0, DefaultDirPerm is used. It returns nil if the directory
// already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the directory holding catlog's config file:
// $CATLOG_CONFIG_DIR if set, otherwise <ConfigHome>/catlog.
func AppConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the YAML config file in AppConfigDir.
func ConfigFile() string {
	return ConfigFileIn(AppConfigDir(), "yaml")
}

// ConfigFileIn returns the config file path in dir for the given extension.
func ConfigFileIn(dir, ext string) string {
	return filepath.Join(dir, ConfigFileName+"."+ext)
}
