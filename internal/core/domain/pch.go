package domain

import "slices"

// PCHEntry records a precompiled header built for a single source file.
// Entries are immutable once stored; regeneration replaces the whole entry.
type PCHEntry struct {
	// Source is the full path of the translation unit the PCH belongs to.
	Source string
	// Artifact is the path of the compiled .pch file.
	Artifact string
	// Headers is the ordered list of headers the PCH was built from.
	Headers []string
	// RemovedIncludes is the removed-include set the PCH was built against.
	RemovedIncludes []string
	// Built reports whether the PCH build completed successfully.
	Built bool
}

// Matches reports whether the entry was built against the given
// removed-include set. The comparison is order-sensitive: the removed
// includes are recorded in buffer order and a reordering means the buffer
// changed.
func (e PCHEntry) Matches(removedIncludes []string) bool {
	return slices.Equal(e.RemovedIncludes, removedIncludes)
}
