package driver

import (
	"go.trai.ch/clank/internal/core/domain"
)

// commandBuilder constructs the compiler invocation for each pipeline
// stage. Stage commands are assembled as structured argument vectors so a
// substituted value can never be re-expanded inside another.
type commandBuilder struct {
	// binary is the compiler executable.
	binary string
	// args is the synthesized compilation argument list.
	args []string
	// dir is the working directory, the source file's own directory.
	dir string
	// cacheDir is the PCH cache directory.
	cacheDir string
}

// preProcess builds the preprocessing invocation for source:
//
//	<clang> -cc1 <args> -w <source> -E
//
// with combined output captured into the transient preprocessor file.
func (b commandBuilder) preProcess(source string) domain.Command {
	args := []string{"-cc1"}
	args = append(args, b.args...)
	args = append(args, "-w", source, "-E")
	return domain.Command{
		Stage:       domain.StagePreProcess,
		Binary:      b.binary,
		Args:        args,
		Dir:         b.dir,
		CaptureFile: domain.PreprocessOutputPath(b.cacheDir, source),
	}
}

// createPCH builds the PCH compilation invocation for source:
//
//	<clang> -cc1 -x c++-header <args> -w <pch header> -emit-pch -o <pch>
func (b commandBuilder) createPCH(source string) domain.Command {
	args := []string{"-cc1", "-x", "c++-header"}
	args = append(args, b.args...)
	args = append(args,
		"-w", domain.PCHHeaderPath(b.cacheDir, source),
		"-emit-pch", "-o", domain.PCHArtifactPath(b.cacheDir, source),
	)
	return domain.Command{
		Stage:  domain.StageCreatePCH,
		Binary: b.binary,
		Args:   args,
		Dir:    b.dir,
	}
}

// codeComplete builds the completion invocation against the probe file:
//
//	<clang> -cc1 <args> -w -fsyntax-only -include-pch <pch>
//	        -code-completion-at=<location> <probe>
func (b commandBuilder) codeComplete(source, probe string, loc domain.Location) domain.Command {
	args := []string{"-cc1"}
	args = append(args, b.args...)
	args = append(args,
		"-w", "-fsyntax-only",
		"-include-pch", domain.PCHArtifactPath(b.cacheDir, source),
		"-code-completion-at="+loc.Token(),
		probe,
	)
	return domain.Command{
		Stage:  domain.StageCodeComplete,
		Binary: b.binary,
		Args:   args,
		Dir:    b.dir,
	}
}
