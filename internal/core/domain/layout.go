package domain

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// ClankDirName is the name of the internal metadata directory.
	ClankDirName = ".clank"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// PCHDirName is the name of the precompiled-header cache directory.
	PCHDirName = "pch"

	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "clank.yaml"

	// PCHHeaderSuffix is appended to a source basename to form the
	// synthesized PCH header file name.
	PCHHeaderSuffix = "__H__.h"

	// PCHArtifactExt is appended to the synthesized header name to form
	// the compiled artifact name.
	PCHArtifactExt = ".pch"

	// PreprocessExt is appended to the synthesized header name to form the
	// transient preprocessor capture file name.
	PreprocessExt = ".1"

	// ProbeSuffix is appended to a source basename to form the transient
	// completion probe file written next to the source file.
	ProbeSuffix = "_clang_tmp.cpp"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultPCHCachePath returns the process-wide PCH cache directory,
// rooted in the user cache directory when available.
func DefaultPCHCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, ClankDirName[1:], CacheDirName, PCHDirName)
}

// baseName returns the file name of path without its extension.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// PCHHeaderPath returns the path of the synthesized PCH header for source
// inside cacheDir: <cacheDir>/<basename>__H__.h.
func PCHHeaderPath(cacheDir, source string) string {
	return filepath.Join(cacheDir, baseName(source)+PCHHeaderSuffix)
}

// PCHArtifactPath returns the path of the compiled PCH artifact for source:
// <cacheDir>/<basename>__H__.h.pch.
func PCHArtifactPath(cacheDir, source string) string {
	return PCHHeaderPath(cacheDir, source) + PCHArtifactExt
}

// PreprocessOutputPath returns the path of the transient preprocessor
// capture file for source: <cacheDir>/<basename>__H__.h.1.
func PreprocessOutputPath(cacheDir, source string) string {
	return PCHHeaderPath(cacheDir, source) + PreprocessExt
}

// ProbePath returns the path of the transient completion probe written in
// the source file's own directory: <dir>/<basename>_clang_tmp.cpp.
func ProbePath(source string) string {
	return filepath.Join(filepath.Dir(source), baseName(source)+ProbeSuffix)
}

// sourceExts are the translation-unit extensions. Files with any other
// extension are completed through an #include wrapper probe.
var sourceExts = map[string]bool{
	".c":   true,
	".cc":  true,
	".cpp": true,
	".cxx": true,
	".c++": true,
}

// IsSourceFile reports whether path names a C or C++ translation unit as
// opposed to a header.
func IsSourceFile(path string) bool {
	return sourceExts[strings.ToLower(filepath.Ext(path))]
}
