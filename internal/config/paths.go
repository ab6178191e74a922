package config

import (
	"os"
	"path/filepath"
)

// CrashLogDir is the directory for crash logs relative to the data directory.
const CrashLogDir = "crash_logs"

// GetGlobalConfigDir returns the path to the global configuration directory (~/.taskdeck).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdeck"), nil
}

// ResolveDataDir returns the directory holding the SQLite database and crash logs.
// Resolution order (first match wins):
// 1. Explicit config via "dataDir" (config file/env)
// 2. Local project directory: .taskdeck (if exists)
// 3. XDG_DATA_HOME/taskdeck (if XDG_DATA_HOME is set)
// 4. Global fallback: ~/.taskdeck
func ResolveDataDir(explicit string) string {
	if explicit != "" {
		return explicit
	}

	local := ".taskdeck"
	if info, err := os.Stat(local); err == nil && info.IsDir() {
		return local
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "taskdeck")
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return local
	}
	return dir
}

// DefaultDBPath returns the SQLite database path inside dataDir.
func DefaultDBPath(dataDir string) string {
	return filepath.Join(dataDir, DefaultDBFile)
}

// CrashLogPath returns the crash log directory inside dataDir.
func CrashLogPath(dataDir string) string {
	return filepath.Join(dataDir, CrashLogDir)
}
