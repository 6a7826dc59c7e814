package config

// Clankfile represents the structure of the clank.yaml workspace file.
type Clankfile struct {
	Version string `yaml:"version"`
	// Clang is the compiler binary; empty means "clang" on PATH.
	Clang string `yaml:"clang"`
	// Completion toggles clang completion. Defaults to enabled.
	Completion *bool `yaml:"completion"`
	// Matrix is the workspace build matrix.
	Matrix Matrix `yaml:"matrix"`
	// Projects maps project names to their definitions.
	Projects map[string]*ProjectDTO `yaml:"projects"`
}

// Matrix represents the workspace build matrix.
type Matrix struct {
	// Selected is the active workspace configuration name.
	Selected string `yaml:"selected"`
}

// ProjectDTO represents a project definition in the workspace file.
type ProjectDTO struct {
	// Environment is applied when expanding shell expressions from this
	// project's compile options.
	Environment map[string]string `yaml:"environment"`
	// Selections maps a workspace configuration name to the project
	// configuration built under it. Missing entries fall back to the
	// workspace configuration name itself.
	Selections map[string]string `yaml:"selections"`
	// Configurations maps configuration names to their build settings.
	Configurations map[string]*BuildConfigDTO `yaml:"configurations"`
}

// BuildConfigDTO represents a single build configuration. Path and flag
// fields are semicolon-delimited, the form the build system stores them in.
type BuildConfigDTO struct {
	IncludePaths   string `yaml:"includePaths"`
	CompileOptions string `yaml:"compileOptions"`
	Preprocessor   string `yaml:"preprocessor"`
	CustomBuild    bool   `yaml:"customBuild"`
}
