// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/cine-cli/cine/constant"
	"github.com/cine-cli/cine/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "CINE_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the primary configuration directory.
// CINE_CONFIG_PATH takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Cine))
}

// Data resolves the directory for user data that should survive cache cleanups.
// Honors XDG_DATA_HOME and falls back to ~/.local/share.
func Data() string {
	if custom, ok := os.LookupEnv("XDG_DATA_HOME"); ok && custom != "" {
		return ensureDir(filepath.Join(custom, constant.Cine))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ensureDir(filepath.Join(Config(), "data"))
	}
	return ensureDir(filepath.Join(home, ".local", "share", constant.Cine))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Cine))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Extractors resolves the directory holding user Lua extractor scripts.
func Extractors() string {
	return ensureDir(filepath.Join(Config(), "extractors"))
}

// Dumps resolves the directory where fetched pages are saved when HTML dumping is enabled.
func Dumps() string {
	return ensureDir(filepath.Join(Cache(), "dumps"))
}

// History resolves the append-only viewing history log.
func History() string {
	return filepath.Join(Data(), "history.jsonl")
}

// Queries resolves the search query suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Catalog resolves the directory for cached catalog responses.
func Catalog() string {
	return ensureDir(filepath.Join(Cache(), "catalog"))
}

// Temp resolves a volatile directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Cine))
}
