package watcher

import (
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ContentHashes remembers the last seen content hash per path so that
// file system events which do not alter the bytes can be ignored.
type ContentHashes struct {
	mu    sync.Mutex
	known map[string]uint64
}

// NewContentHashes creates an empty hash cache.
func NewContentHashes() *ContentHashes {
	return &ContentHashes{known: make(map[string]uint64)}
}

// Prime records the current content hash of path without reporting a change.
// A file that cannot be read is left unknown.
func (c *ContentHashes) Prime(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.known[path] = xxhash.Sum64(data)
}

// Changed reports whether the content of path differs from the last call
// and records the new hash. An unreadable file counts as changed, since a
// removed or half-written file invalidates whatever was derived from it.
func (c *ContentHashes) Changed(path string) bool {
	data, err := os.ReadFile(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		delete(c.known, path)
		return true
	}

	hash := xxhash.Sum64(data)
	previous, seen := c.known[path]
	c.known[path] = hash
	return !seen || previous != hash
}

// Forget drops the recorded hash for path.
func (c *ContentHashes) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.known, path)
}
