// export_test.go exports private helpers for white-box testing.
package driver

import "go.trai.ch/clank/internal/core/domain"

var (
	IdentifierPrefix       = identifierPrefix
	WriteProbe             = writeProbe
	ShellExpression        = shellExpression
	StripIncompatibleFlags = stripIncompatibleFlags
)

// NewCommandBuilder constructs the stage command builder for golden tests.
func NewCommandBuilder(binary string, args []string, dir, cacheDir string) commandBuilder {
	return commandBuilder{binary: binary, args: args, dir: dir, cacheDir: cacheDir}
}

func (b commandBuilder) PreProcess(source string) domain.Command {
	return b.preProcess(source)
}

func (b commandBuilder) CreatePCH(source string) domain.Command {
	return b.createPCH(source)
}

func (b commandBuilder) CodeComplete(source, probe string, loc domain.Location) domain.Command {
	return b.codeComplete(source, probe, loc)
}

// NewArgBuilder exposes the argument builder for white-box testing.
var NewArgBuilder = newArgBuilder
