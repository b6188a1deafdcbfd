package fsutil

import (
	"path/filepath"
	"sync"
)

// pathLocks serializes reads and writes of the same document file within
// the process. Keys are absolute, cleaned paths.
var pathLocks sync.Map

func lockKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// withPathLock runs fn while holding the lock for path
func withPathLock(path string, fn func() error) error {
	actual, _ := pathLocks.LoadOrStore(lockKey(path), &sync.Mutex{})
	mu := actual.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
