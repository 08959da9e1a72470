package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	openErr error
	info    fs.FileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) Open() (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	if f.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", f.absPath)
	}
	return io.NopCloser(bytes.NewReader(f.content)), nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.getEntriesUnder(d.absPath)

	// Sort by path for deterministic order
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	for _, entry := range entries {
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			callbackErr = fn(entry, nil)
		}()

		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}

	mfs.files[root] = &memoryFile{
		absPath: root,
		relPath: ".",
		info: &memoryFileInfo{
			name:    path.Base(root),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	return mfs
}

// AddFile adds a text file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.addFile(filePath, []byte(content), nil)
}

// AddBinaryFile adds a file with arbitrary bytes
func (mfs *MemoryFileSystem) AddBinaryFile(filePath string, content []byte) {
	mfs.addFile(filePath, content, nil)
}

// AddUnreadableFile adds a file whose Open always fails, simulating
// permission or I/O errors.
func (mfs *MemoryFileSystem) AddUnreadableFile(filePath string) {
	mfs.addFile(filePath, nil, fmt.Errorf("open %s: %w", filePath, fs.ErrPermission))
}

func (mfs *MemoryFileSystem) addFile(filePath string, content []byte, openErr error) {
	absPath := mfs.resolve(filePath)

	relPath, err := filepath.Rel(mfs.root, absPath)
	if err != nil {
		relPath = filePath
	}
	relPath = filepath.ToSlash(relPath)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: relPath,
		content: content,
		openErr: openErr,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.files[absPath]; exists {
		return
	}
	mfs.files[absPath] = newMemoryDir(absPath, strings.TrimPrefix(absPath, mfs.root+"/"))
	mfs.ensureDirectoriesExist(absPath)
}

// resolve maps a path to its absolute form inside the virtual filesystem
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return mfs.root
	}
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = newMemoryDir(dir, strings.TrimPrefix(dir, mfs.root+"/"))
	mfs.ensureDirectoriesExist(dir)
}

func newMemoryDir(absPath, relPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		relPath: relPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	basePath = filepath.ToSlash(basePath)
	var entries []*memoryFile

	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}

		if matched {
			entries = append(entries, file)
		}
	}

	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{
		absPath: absPath,
		fs:      mfs,
	}, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}

	return file.info, nil
}
