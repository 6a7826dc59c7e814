package ports

import "go.trai.ch/clank/internal/core/domain"

// Workspace is the read-only view of the build system's project model the
// driver consumes.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// IsOpen reports whether a workspace is currently open.
	IsOpen() bool

	// CompletionEnabled reports whether clang completion is enabled.
	CompletionEnabled() bool

	// ClangBinary returns the configured compiler binary. May be empty,
	// in which case the driver falls back to "clang" on PATH.
	ClangBinary() string

	// SelectedConfiguration returns the build matrix's active workspace
	// configuration name.
	SelectedConfiguration() string

	// ProjectBuildConfig resolves the build configuration selected for
	// project under the given workspace configuration.
	ProjectBuildConfig(project, workspaceConfig string) (domain.BuildConfig, error)

	// Environment returns the project's environment in "KEY=VALUE" form,
	// applied when expanding shell expressions from the configuration.
	Environment(project string) []string
}
