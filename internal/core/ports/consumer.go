package ports

// Consumer receives the raw output of the final completion invocation for
// downstream parsing into structured candidates.
//
//go:generate mockgen -source=consumer.go -destination=mocks/mock_consumer.go -package=mocks
type Consumer interface {
	// OnCompletionOutput is called exactly once per successful run with
	// the captured compiler output.
	OnCompletionOutput(output string)
}
