package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsbteam/chat/internal/paths"
)

// WriteLines replaces the config file atomically.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return writeFileAtomic(configPath, []byte(b.String()), 0600)
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Edit reads the config file, hands its lines to fn and writes back what
// fn returns, all while holding the lock. A nil result leaves the file
// untouched.
func Edit(fn func(lines []string) ([]string, error)) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		updated, err := fn(lines)
		if err != nil || updated == nil {
			return err
		}
		return WriteLines(updated)
	})
}
