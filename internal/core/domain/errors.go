package domain

import "go.trai.ch/zerr"

var (
	// ErrNilEditor is returned when a completion request carries no editor.
	ErrNilEditor = zerr.New("no editor attached to completion request")

	// ErrCompletionDisabled is returned when clang completion is disabled by configuration.
	ErrCompletionDisabled = zerr.New("clang code-completion is disabled")

	// ErrDriverBusy is returned when a completion request arrives while another run is in flight.
	ErrDriverBusy = zerr.New("another completion is in progress")

	// ErrNoWorkspace is returned when no workspace is open.
	ErrNoWorkspace = zerr.New("no workspace is open")

	// ErrEmptyBuffer is returned when the editing buffer up to the cursor is empty.
	ErrEmptyBuffer = zerr.New("buffer is empty")

	// ErrProjectNotFound is returned when the editor's project is not part of the workspace.
	ErrProjectNotFound = zerr.New("project not found in workspace")

	// ErrNoBuildConfig is returned when no build configuration resolves for the project.
	ErrNoBuildConfig = zerr.New("no build configuration for project")

	// ErrCustomBuild is returned when the resolved configuration is a custom build.
	ErrCustomBuild = zerr.New("custom build configurations are not supported")

	// ErrProbeWriteFailed is returned when the completion probe file cannot be written.
	ErrProbeWriteFailed = zerr.New("failed to write completion probe file")

	// ErrLaunchFailed is returned when the compiler process cannot be started.
	ErrLaunchFailed = zerr.New("failed to start compiler process")

	// ErrAborted is returned when a completion run is aborted by the caller.
	ErrAborted = zerr.New("completion run aborted")

	// ErrBacktickFailed is returned when a shell-expansion expression cannot be executed.
	ErrBacktickFailed = zerr.New("failed to expand shell expression")

	// ErrIncludeLocateFailed is returned when the standard include paths cannot be located.
	ErrIncludeLocateFailed = zerr.New("failed to locate standard include paths")

	// ErrConfigReadFailed is returned when the workspace file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read workspace file")

	// ErrConfigParseFailed is returned when the workspace file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse workspace file")

	// ErrConfigNotFound is returned when no workspace file can be found.
	ErrConfigNotFound = zerr.New("could not find clank.yaml")

	// ErrCacheCreateFailed is returned when the PCH cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create PCH cache directory")

	// ErrInvalidLocation is returned when a completion location cannot be parsed.
	ErrInvalidLocation = zerr.New("invalid completion location, expected file:line:column")
)
