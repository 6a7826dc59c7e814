package logger

import "go.trai.ch/clank/internal/core/ports"

var _ ports.Logger = Nop{}

// Nop is a Logger that discards everything. Used in tests.
type Nop struct{}

// NewNop creates a no-op logger.
func NewNop() Nop { return Nop{} }

// Debug discards the message.
func (Nop) Debug(string) {}

// Info discards the message.
func (Nop) Info(string) {}

// Warn discards the message.
func (Nop) Warn(string) {}

// Error discards the error.
func (Nop) Error(error) {}
