package driver

import (
	"os"
	"sync"

	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/zerr"
)

// PCHCache maps source files to their precompiled-header entries. One entry
// per source path, overwritten whole on regeneration; there is no eviction.
type PCHCache struct {
	dir string

	mu      sync.Mutex
	entries map[string]domain.PCHEntry
}

// NewPCHCache creates a cache rooted at dir. When dir is empty the
// process-wide default location is used.
func NewPCHCache(dir string) *PCHCache {
	if dir == "" {
		dir = domain.DefaultPCHCachePath()
	}
	return &PCHCache{
		dir:     dir,
		entries: make(map[string]domain.PCHEntry),
	}
}

// Dir returns the cache directory.
func (c *PCHCache) Dir() string {
	return c.dir
}

// EnsureDir creates the cache directory if it does not exist yet.
func (c *PCHCache) EnsureDir() error {
	if err := os.MkdirAll(c.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}
	return nil
}

// Lookup returns the entry cached for source, or a zero entry when none
// exists. The zero entry is never valid.
func (c *PCHCache) Lookup(source string) domain.PCHEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[source]
}

// IsValid reports whether the entry's PCH build completed successfully and
// its artifact still exists on disk.
func (c *PCHCache) IsValid(entry domain.PCHEntry) bool {
	if !entry.Built || entry.Artifact == "" {
		return false
	}
	_, err := os.Stat(entry.Artifact)
	return err == nil
}

// NeedsRegeneration reports whether the entry must be rebuilt for the given
// removed-include set: true when the set differs from what the entry was
// built against, or when a header the entry was built from no longer exists.
func (c *PCHCache) NeedsRegeneration(entry domain.PCHEntry, removedIncludes []string) bool {
	if !entry.Matches(removedIncludes) {
		return true
	}
	for _, h := range entry.Headers {
		if _, err := os.Stat(h); err != nil {
			return true
		}
	}
	return false
}

// Store records a freshly built PCH for source, replacing any prior entry
// unconditionally.
func (c *PCHCache) Store(source, artifact string, removedIncludes, headers []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[source] = domain.PCHEntry{
		Source:          source,
		Artifact:        artifact,
		Headers:         headers,
		RemovedIncludes: removedIncludes,
		Built:           true,
	}
}

// Clear drops all in-memory entries. On-disk artifacts are left in place.
func (c *PCHCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]domain.PCHEntry)
}

// Purge drops all entries and deletes the cache directory contents.
func (c *PCHCache) Purge() error {
	c.Clear()
	if err := os.RemoveAll(c.dir); err != nil {
		return zerr.Wrap(err, "failed to remove PCH cache directory")
	}
	return nil
}
