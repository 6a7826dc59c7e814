package driver

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/clank/internal/core/domain"
)

// reLineMarker matches a preprocessor line marker and captures the quoted
// file path, e.g.
//
//	# 330 "c:\\mingw-4.4.1\\include/stdio.h"
//
// Malformed marker lines simply don't match; they are never an error.
var reLineMarker = regexp.MustCompile(`^#[ \t]*[0-9]+[ \t]*"([a-zA-Z0-9_/\\: .+\-]+)"`)

// FilterPreprocessorOutput parses the preprocessor's line-marker output and
// returns the ordered, deduplicated list of files it pulled in. Paths are
// unescaped, made absolute relative to baseDir, and the active file's own
// translation unit is skipped.
func FilterPreprocessorOutput(output, baseDir, activeFile string) []string {
	activeName := filepath.Base(activeFile)

	var includes []string
	seen := make(map[string]bool)

	for line := range strings.Lines(output) {
		line = strings.TrimSpace(line)
		if line == "" || line[0] != '#' {
			continue
		}

		m := reLineMarker.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		path := strings.ReplaceAll(m[1], `\\`, `\`)

		// The preprocessor reports the unit being preprocessed as well.
		if domain.IsSourceFile(path) && filepath.Base(path) == activeName {
			continue
		}

		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		path = filepath.Clean(path)

		if !seen[path] {
			seen[path] = true
			includes = append(includes, path)
		}
	}

	return includes
}

// ShouldInclude reports whether header corresponds to something the user
// explicitly included: true iff some removed-include entry is a suffix of
// the header's full path.
func ShouldInclude(header string, removedIncludes []string) bool {
	for _, inc := range removedIncludes {
		if strings.HasSuffix(header, inc) {
			return true
		}
	}
	return false
}

// SelectPCHHeaders filters the preprocessor-reported includes down to the
// headers re-injected into the synthesized PCH header. Transitively pulled
// system headers are dropped; only what the buffer explicitly included
// survives.
func SelectPCHHeaders(includes, removedIncludes []string) []string {
	var headers []string
	for _, inc := range includes {
		if ShouldInclude(inc, removedIncludes) {
			headers = append(headers, inc)
		}
	}
	return headers
}

// RenderPCHHeader renders the synthesized PCH header source from the
// selected header list.
func RenderPCHHeader(headers []string) string {
	var b strings.Builder
	for _, h := range headers {
		b.WriteString(`#include "`)
		b.WriteString(h)
		b.WriteString("\"\n")
	}
	return b.String()
}
