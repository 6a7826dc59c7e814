package ports

import "context"

// IncludeLocator discovers the standard system include paths of a compiler
// binary. Results are memoized per binary by the caller; a locator performs
// the actual discovery every time it is asked.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type IncludeLocator interface {
	// Locate returns the standard include directories for binary.
	Locate(ctx context.Context, binary string) ([]string, error)
}
