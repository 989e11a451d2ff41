// Package paths resolves the configuration directory, the data directory,
// and the files Pantry keeps inside them.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user platform directories.
const appName = "pantry"

// DefaultDataDirName is the CWD-relative data directory used when nothing
// else is configured.
const DefaultDataDirName = ".pantry-data"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "PANTRY_CONFIG_DIR"
	EnvDataDir   = "PANTRY_DATA_DIR"
)

// Files kept in the data directory.
const (
	JournalFileName = "journal.jsonl"
	SnapshotDirName = "snapshots"
)

// userDirs holds platform lookups that tests can override.
var userDirs = struct {
	home   func() (string, error)
	config func() (string, error)
}{
	home:   os.UserHomeDir,
	config: os.UserConfigDir,
}

// DefaultConfigDir returns the platform configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/pantry (fallback ~/.config/pantry)
// Others:  os.UserConfigDir()/pantry
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
	dir, err := userDirs.config()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// xdgDir returns $env/pantry or ~/fallback/pantry.
func xdgDir(env, fallback string) (string, error) {
	if v := os.Getenv(env); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := userDirs.home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appName), nil
}

// ResolveConfigDir applies the precedence flag > PANTRY_CONFIG_DIR >
// DefaultConfigDir. Explicit values are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir applies the precedence flag > config data_dir >
// PANTRY_DATA_DIR > $(CWD)/.pantry-data. The result is absolute.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if v != "" {
			return filepath.Abs(v)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// Layout locates the files of one data directory.
type Layout struct {
	DataDir string
	File    string // inventory file name or path
}

// InventoryPath returns the inventory file path. An absolute File is used
// as is; a relative one is joined to DataDir.
func (l Layout) InventoryPath() string {
	if filepath.IsAbs(l.File) {
		return l.File
	}
	return filepath.Join(l.DataDir, l.File)
}

// JournalPath returns the journal file path.
func (l Layout) JournalPath() string {
	return filepath.Join(l.DataDir, JournalFileName)
}

// SnapshotDir returns the snapshot directory path.
func (l Layout) SnapshotDir() string {
	return filepath.Join(l.DataDir, SnapshotDirName)
}

// Ensure creates the data directory if needed.
func (l Layout) Ensure() error {
	return os.MkdirAll(l.DataDir, 0o755)
}
