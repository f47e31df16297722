// Package interfaces defines core domain contracts.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

// Logger defines the interface for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// NoOpLogger discards everything (used when no logger is injected, and in tests)
type NoOpLogger struct{}

// Debug does nothing
func (n *NoOpLogger) Debug(_ string, _ ...Field) {}

// Info does nothing
func (n *NoOpLogger) Info(_ string, _ ...Field) {}

// Warn does nothing
func (n *NoOpLogger) Warn(_ string, _ ...Field) {}

// Error does nothing
func (n *NoOpLogger) Error(_ string, _ ...Field) {}
