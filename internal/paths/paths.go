// Package paths locates the files fsb reads and writes.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDirName = "fsb"

	// ConfigFileName is the key=value config file in the home directory.
	ConfigFileName = ".fsbrc"

	logFileName      = "fsb.log"
	databaseFileName = "chat.db"
)

// AppDataDir is os.UserConfigDir()/fsb, created with mode 0700 on first
// use. It holds the log file. Falls back to "." when there is no config dir.
func AppDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(base, appDirName)
	_ = os.MkdirAll(dir, 0700)
	return dir
}

// AppLocalDataDir is where the server keeps its database:
// ~/Library/Application Support/fsb on macOS, %LOCALAPPDATA%\fsb on
// Windows and $XDG_DATA_HOME/fsb (~/.local/share/fsb) elsewhere.
func AppLocalDataDir() string {
	base, ok := localDataBase(runtime.GOOS, os.Getenv, os.UserHomeDir)
	if !ok {
		return "."
	}
	return filepath.Join(base, appDirName)
}

func localDataBase(goos string, getenv func(string) string, homeDir func() (string, error)) (string, bool) {
	var env string
	var fallback []string
	switch goos {
	case "darwin":
		fallback = []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "LOCALAPPDATA", []string{"AppData", "Local"}
	default:
		env, fallback = "XDG_DATA_HOME", []string{".local", "share"}
	}

	if env != "" {
		if dir := getenv(env); dir != "" {
			return dir, true
		}
	}
	home, err := homeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(append([]string{home}, fallback...)...), true
}

// DatabasePath returns the default location of the server database.
func DatabasePath() string {
	return filepath.Join(AppLocalDataDir(), databaseFileName)
}

// ConfigFilePath returns ~/.fsbrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}

func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}
