package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/clank/internal/engine/driver"
)

// writeFile creates a file with throwaway content for existence checks.
func writeFile(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestPCHCache_LookupMiss(t *testing.T) {
	cache := driver.NewPCHCache(t.TempDir())

	entry := cache.Lookup("/proj/src/main.cpp")
	assert.False(t, entry.Built)
	assert.False(t, cache.IsValid(entry))
}

func TestPCHCache_StoreLookup(t *testing.T) {
	dir := t.TempDir()
	cache := driver.NewPCHCache(dir)
	artifact := writeFile(t, filepath.Join(dir, "main__H__.h.pch"))

	cache.Store("/proj/src/main.cpp", artifact, []string{"vector"}, nil)

	entry := cache.Lookup("/proj/src/main.cpp")
	assert.True(t, entry.Built)
	assert.Equal(t, artifact, entry.Artifact)
	assert.True(t, cache.IsValid(entry))

	// Storing again replaces the entry whole.
	cache.Store("/proj/src/main.cpp", artifact, []string{"map"}, nil)
	assert.Equal(t, []string{"map"}, cache.Lookup("/proj/src/main.cpp").RemovedIncludes)
}

func TestPCHCache_IsValid_MissingArtifact(t *testing.T) {
	dir := t.TempDir()
	cache := driver.NewPCHCache(dir)

	cache.Store("/proj/src/main.cpp", filepath.Join(dir, "gone.pch"), nil, nil)
	assert.False(t, cache.IsValid(cache.Lookup("/proj/src/main.cpp")))
}

func TestPCHCache_NeedsRegeneration(t *testing.T) {
	dir := t.TempDir()
	cache := driver.NewPCHCache(dir)
	header := writeFile(t, filepath.Join(dir, "util.h"))

	entry := domain.PCHEntry{
		Source:          "/proj/src/main.cpp",
		Artifact:        filepath.Join(dir, "main__H__.h.pch"),
		Headers:         []string{header},
		RemovedIncludes: []string{"vector", "util.h"},
		Built:           true,
	}

	assert.False(t, cache.NeedsRegeneration(entry, []string{"vector", "util.h"}))

	// A different include set invalidates the entry, and so does order:
	// the set is compared as the ordered list the buffer produced.
	assert.True(t, cache.NeedsRegeneration(entry, []string{"vector"}))
	assert.True(t, cache.NeedsRegeneration(entry, []string{"util.h", "vector"}))

	// A header the PCH was built from disappearing invalidates it too.
	require.NoError(t, os.Remove(header))
	assert.True(t, cache.NeedsRegeneration(entry, []string{"vector", "util.h"}))
}

func TestPCHCache_Clear(t *testing.T) {
	cache := driver.NewPCHCache(t.TempDir())
	cache.Store("/proj/src/main.cpp", "artifact", nil, nil)

	cache.Clear()
	assert.False(t, cache.Lookup("/proj/src/main.cpp").Built)
}

func TestPCHCache_EnsureDirAndPurge(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pch")
	cache := driver.NewPCHCache(dir)

	require.NoError(t, cache.EnsureDir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	writeFile(t, filepath.Join(dir, "main__H__.h.pch"))
	cache.Store("/proj/src/main.cpp", filepath.Join(dir, "main__H__.h.pch"), nil, nil)

	require.NoError(t, cache.Purge())
	assert.False(t, cache.Lookup("/proj/src/main.cpp").Built)
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestPCHCache_DefaultDir(t *testing.T) {
	cache := driver.NewPCHCache("")
	assert.NotEmpty(t, cache.Dir())
}
