// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package organize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockFileName is created at the scan root for the duration of a live run.
const lockFileName = ".organize.lock"

// ErrLocked is returned when another live run holds the root's lock.
var ErrLocked = errors.New("another organize run is in progress")

// runLock serializes live runs against the same root so that two runs do
// not pick the same collision-free destination name.
type runLock struct {
	fl   *flock.Flock
	path string
}

func acquireLock(root string) (*runLock, error) {
	path := filepath.Join(root, lockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock held on %s)", ErrLocked, path)
	}
	return &runLock{fl: fl, path: path}, nil
}

// release drops the lock, then removes the lock file. A lock file that is
// already gone is not an error.
func (l *runLock) release() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("releasing lock %s: %w", l.path, err)
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing lock file %s: %w", l.path, err)
	}
	return nil
}
