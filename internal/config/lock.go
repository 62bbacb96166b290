package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/fsbteam/chat/internal/log"
	"github.com/fsbteam/chat/internal/paths"
)

// ErrLockTimeout is returned when another fsb process holds the config
// lock past the timeout.
var ErrLockTimeout = errors.New("config: lock timeout")

var lockTiming = struct {
	timeout time.Duration
	stale   time.Duration // a lock older than this was left by a dead process
	poll    time.Duration
}{
	timeout: 5 * time.Second,
	stale:   30 * time.Second,
	poll:    50 * time.Millisecond,
}

// fileLock is an O_EXCL lock file next to the config file holding the
// owner's PID.
type fileLock struct {
	path string
	f    *os.File
}

// WithLock runs fn while holding the config lock, so that concurrent fsb
// processes do not lose each other's edits.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	l, err := acquireLock(configPath + ".lock")
	if err != nil {
		return err
	}
	defer l.release()

	return fn()
}

func acquireLock(path string) (*fileLock, error) {
	deadline := time.Now().Add(lockTiming.timeout)

	for {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = fmt.Fprintf(f, "%d\n", os.Getpid())
			return &fileLock{path: path, f: f}, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("config: lock: %w", err)
		}

		if breakStaleLock(path) {
			continue
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(lockTiming.poll)
	}
}

// breakStaleLock removes path when it is older than lockTiming.stale.
func breakStaleLock(path string) bool {
	info, err := os.Stat(path)
	if err != nil || time.Since(info.ModTime()) <= lockTiming.stale {
		return false
	}
	log.Warn("config: removing stale lock %s", path)
	return os.Remove(path) == nil
}

func (l *fileLock) release() {
	_ = l.f.Close()
	_ = os.Remove(l.path)
}
