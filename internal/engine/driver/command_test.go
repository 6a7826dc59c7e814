package driver_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/clank/internal/engine/driver"
)

// renderCommand flattens a stage command into the stable text form the
// golden files record.
func renderCommand(cmd domain.Command) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "stage: %s\n", cmd.Stage)
	fmt.Fprintf(&b, "dir: %s\n", cmd.Dir)
	fmt.Fprintf(&b, "command: %s\n", cmd)
	if cmd.CaptureFile != "" {
		fmt.Fprintf(&b, "capture: %s\n", cmd.CaptureFile)
	}
	return []byte(b.String())
}

func TestCommandBuilder(t *testing.T) {
	b := driver.NewCommandBuilder(
		"clang",
		[]string{"-I/usr/include", "-std=c++17"},
		"/proj/src",
		"/cache",
	)
	source := "/proj/src/main.cpp"

	t.Run("pre-process", func(t *testing.T) {
		g := goldie.New(t)
		g.Assert(t, "command_preprocess", renderCommand(b.PreProcess(source)))
	})

	t.Run("create-pch", func(t *testing.T) {
		g := goldie.New(t)
		g.Assert(t, "command_create_pch", renderCommand(b.CreatePCH(source)))
	})

	t.Run("code-completion", func(t *testing.T) {
		loc := domain.Location{File: "main_clang_tmp.cpp", Line: 10, Column: 5}
		g := goldie.New(t)
		g.Assert(t, "command_code_complete",
			renderCommand(b.CodeComplete(source, "/proj/src/main_clang_tmp.cpp", loc)))
	})
}
