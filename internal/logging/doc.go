// Package logging provides concrete implementations of the charlint.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: zerolog console output on stderr, debug level when verbose
//   - NullLogger: Discards all messages (useful for testing)
//
// Stdout is reserved for annotations, so no implementation writes there.
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
