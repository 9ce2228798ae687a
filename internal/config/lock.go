package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/wangjing53406/navi/internal/paths"
)

const lockSuffix = ".lock"

// ErrLockTimeout matches every LockedError.
var ErrLockTimeout = errors.New("config: lock timeout")

// LockedError is returned when another process holds the config lock for
// longer than the lock timeout.
type LockedError struct {
	Path string // the file being protected
	PID  int    // holder of the lock, 0 when unknown
}

func (e *LockedError) Error() string {
	if e.PID > 0 {
		return fmt.Sprintf("%s is being edited by another navi process (pid %d)", e.Path, e.PID)
	}
	return fmt.Sprintf("%s is being edited by another navi process", e.Path)
}

func (e *LockedError) Is(target error) bool { return target == ErrLockTimeout }

// fileLock guards target with an exclusively created sibling file holding
// the owner's pid.
type fileLock struct {
	target  string
	timeout time.Duration
	stale   time.Duration
	poll    time.Duration
}

func newFileLock(target string) fileLock {
	return fileLock{
		target:  target,
		timeout: 5 * time.Second,
		stale:   30 * time.Second,
		poll:    50 * time.Millisecond,
	}
}

func (l fileLock) path() string {
	return filepath.Join(filepath.Dir(l.target), "."+strings.TrimPrefix(filepath.Base(l.target), ".")+lockSuffix)
}

// WithLock runs fn while holding the lock on ~/.navirc.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	return newFileLock(configPath).run(fn)
}

func (l fileLock) run(fn func() error) error {
	f, err := l.acquire()
	if err != nil {
		return err
	}
	defer l.release(f)

	return fn()
}

func (l fileLock) acquire() (*os.File, error) {
	lockPath := l.path()
	deadline := time.Now().Add(l.timeout)

	for {
		if info, err := os.Stat(lockPath); err == nil && time.Since(info.ModTime()) > l.stale {
			_ = os.Remove(lockPath)
		}

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("lock %s: %w", l.target, err)
		}

		if time.Now().After(deadline) {
			return nil, &LockedError{Path: l.target, PID: l.holder()}
		}
		time.Sleep(l.poll)
	}
}

// holder reads the pid recorded in the lock file.
func (l fileLock) holder() int {
	data, err := os.ReadFile(l.path())
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}

func (l fileLock) release(f *os.File) {
	_ = f.Close()
	_ = os.Remove(l.path())
}
