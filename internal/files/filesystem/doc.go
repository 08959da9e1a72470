// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The scanner walks and opens files only through these interfaces, so the
// same code runs against the OS filesystem in production and an in-memory
// tree in tests.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual file with metadata and a streaming reader
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, including
//     binary and unreadable file fixtures
package filesystem
