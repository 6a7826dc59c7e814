// Package config provides the workspace configuration loader for clank.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/clank/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace over a clank.yaml file. The file is
// consumed read-only; clank never writes build configuration.
type Workspace struct {
	logger ports.Logger

	mu   sync.RWMutex
	file *Clankfile
	root string
}

// NewWorkspace creates an unopened Workspace.
func NewWorkspace(logger ports.Logger) *Workspace {
	return &Workspace{logger: logger}
}

// Open locates clank.yaml, walking up from cwd, and loads it. The directory
// containing the file becomes the workspace root.
func (w *Workspace) Open(cwd string) error {
	path, err := findConfiguration(cwd)
	if err != nil {
		return err
	}

	var file Clankfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.file = &file
	w.root = filepath.Dir(path)
	return nil
}

// Root returns the workspace root directory, empty when not open.
func (w *Workspace) Root() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.root
}

// IsOpen reports whether a workspace file has been loaded.
func (w *Workspace) IsOpen() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.file != nil
}

// CompletionEnabled reports whether clang completion is enabled. An absent
// setting means enabled.
func (w *Workspace) CompletionEnabled() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.file == nil || w.file.Completion == nil {
		return true
	}
	return *w.file.Completion
}

// ClangBinary returns the configured compiler binary, possibly empty.
func (w *Workspace) ClangBinary() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.file == nil {
		return ""
	}
	return w.file.Clang
}

// SelectedConfiguration returns the build matrix's active workspace
// configuration name.
func (w *Workspace) SelectedConfiguration() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.file == nil {
		return ""
	}
	return w.file.Matrix.Selected
}

// DefaultProject returns the sole configured project name, or empty when
// the workspace defines zero or several projects.
func (w *Workspace) DefaultProject() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.file == nil || len(w.file.Projects) != 1 {
		return ""
	}
	for name := range w.file.Projects {
		return name
	}
	return ""
}

// ProjectBuildConfig resolves the build configuration selected for project
// under the given workspace configuration.
func (w *Workspace) ProjectBuildConfig(project, workspaceConfig string) (domain.BuildConfig, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.file == nil {
		return domain.BuildConfig{}, domain.ErrNoWorkspace
	}

	proj, ok := w.file.Projects[project]
	if !ok {
		return domain.BuildConfig{}, zerr.With(domain.ErrProjectNotFound, "project", project)
	}

	confName := workspaceConfig
	if selected, ok := proj.Selections[workspaceConfig]; ok {
		confName = selected
	}

	dto, ok := proj.Configurations[confName]
	if !ok {
		return domain.BuildConfig{}, zerr.With(
			zerr.With(domain.ErrNoBuildConfig, "project", project),
			"configuration", confName,
		)
	}

	return domain.BuildConfig{
		Name:           confName,
		IncludePath:    dto.IncludePaths,
		CompileOptions: dto.CompileOptions,
		Preprocessor:   dto.Preprocessor,
		CustomBuild:    dto.CustomBuild,
	}, nil
}

// Environment returns the project's environment in "KEY=VALUE" form, sorted
// for determinism.
func (w *Workspace) Environment(project string) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.file == nil {
		return nil
	}
	proj, ok := w.file.Projects[project]
	if !ok {
		return nil
	}

	env := make([]string, 0, len(proj.Environment))
	for k, v := range proj.Environment {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}

// findConfiguration walks up from cwd looking for clank.yaml.
func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// readAndUnmarshalYAML reads and parses a YAML file into out.
func readAndUnmarshalYAML(path string, out any) error {
	data, err := os.ReadFile(path) // #nosec G304 -- workspace file discovered by findConfiguration
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}
