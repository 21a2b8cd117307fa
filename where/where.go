// Package where resolves the filesystem paths the application reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/anisan-cli/anidb/constant"
	"github.com/anisan-cli/anidb/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "ANIDB_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, creating it when missing.
// ANIDB_CONFIG_PATH takes precedence over the user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return mkdir(filepath.Join(base, constant.App))
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Presets returns the path of the mask preset store.
func Presets() string {
	return filepath.Join(Config(), "presets.json")
}
