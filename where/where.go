// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tintscan/tintscan/constant"
	"github.com/tintscan/tintscan/filesystem"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "TINTSCAN_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honoring TINTSCAN_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Tintscan))
}

// Cache resolves the persistent cache directory, falling back to ./cache when the platform one is unavailable.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Tintscan))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the file storing per-workspace state such as the remembered resolution mode.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries resolves the file storing ranked lookup history.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Version resolves the file caching the latest released version.
func Version() string {
	return filepath.Join(Cache(), "version.json")
}
