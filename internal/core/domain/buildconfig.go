package domain

import "strings"

// BuildConfig is the per-project build configuration consumed read-only from
// the workspace. Path and flag fields are semicolon-delimited strings, the
// form the build system stores them in.
type BuildConfig struct {
	// Name of the configuration, e.g. "Debug".
	Name string
	// IncludePath is the semicolon-delimited project include paths.
	IncludePath string
	// CompileOptions is the semicolon-delimited compiler options. Entries
	// may be shell expansions of the form `expr` or $(shell expr).
	CompileOptions string
	// Preprocessor is the semicolon-delimited preprocessor defines.
	Preprocessor string
	// CustomBuild marks configurations driven by an external build tool.
	// Completion does not support them.
	CustomBuild bool
}

// SplitField splits a semicolon-delimited configuration field into its
// trimmed, non-empty entries.
func SplitField(field string) []string {
	parts := strings.Split(field, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
