// Package locator discovers a compiler's built-in include search paths.
package locator

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/clank/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IncludeLocator = (*Locator)(nil)

const (
	searchListStart = "#include <...> search starts here:"
	searchListEnd   = "End of search list."
)

// Locator queries a clang binary for its standard include directories by
// preprocessing an empty translation unit in verbose mode. The search list
// is printed on stderr between two well-known marker lines.
type Locator struct {
	runner ports.Runner
	logger ports.Logger
}

// NewLocator creates a Locator that runs the compiler through the given runner.
func NewLocator(runner ports.Runner, logger ports.Logger) *Locator {
	return &Locator{runner: runner, logger: logger}
}

// Locate returns the compiler's standard include directories, in search order.
func (l *Locator) Locate(ctx context.Context, binary string) ([]string, error) {
	command := fmt.Sprintf("%q -v -x c++ -E - < /dev/null 2>&1", binary)

	lines, err := l.runner.Run(ctx, command, "", nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIncludeLocateFailed.Error()), "binary", binary)
	}

	paths := parseSearchList(lines)
	l.logger.Debug(fmt.Sprintf("located %d standard include paths for %s", len(paths), binary))
	return paths, nil
}

// parseSearchList extracts the directories between the search list markers.
// Framework directory annotations are stripped.
func parseSearchList(lines []string) []string {
	var paths []string
	inList := false
	for _, line := range lines {
		switch {
		case strings.Contains(line, searchListStart):
			inList = true
		case strings.HasPrefix(line, searchListEnd):
			return paths
		case inList:
			path := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), "(framework directory)"))
			if path != "" {
				paths = append(paths, path)
			}
		}
	}
	return paths
}
