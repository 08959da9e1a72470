package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual file discovered during a walk
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the scan root
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// Open opens the file for streaming reads. The caller must close it.
	Open() (io.ReadCloser, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree, calling fn for each file and directory.
	// Entries that could not be read are passed as a nil File and a non-nil error.
	// If fn returns an error, walking stops.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
