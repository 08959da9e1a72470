package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", dir, err)
	}

	absDir, _ := filepath.Abs(dir)
	absDir, _ = filepath.EvalSymlinks(absDir)
	if d.Path() != absDir {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), absDir)
	}
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Open(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("Open(nonexistent) should return error")
	}
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	fs := NewOSFileSystem()

	_, err := fs.Open(filePath)
	if err == nil {
		t.Error("Open(file) should return error")
	}
}

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "notes.txt")
	os.WriteFile(filePath, []byte("hello"), 0644)

	fs := NewOSFileSystem()

	info, err := fs.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file) should not be a directory")
	}
	if info.Name() != "notes.txt" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "notes.txt")
	}
}

func TestOSFileSystem_Stat_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Stat(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Stat(nonexistent) should return error")
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()

	// Create a tree:
	//   dir/
	//     a.txt
	//     sub/
	//       deeper/
	//         b.md
	deeper := filepath.Join(dir, "sub", "deeper")
	os.MkdirAll(deeper, 0755)
	os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one"), 0644)
	os.WriteFile(filepath.Join(deeper, "b.md"), []byte("two"), 0644)

	fs := NewOSFileSystem()
	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var files []string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !f.Info().IsDir() {
			files = append(files, filepath.ToSlash(f.RelativePath()))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Walk found %d files, want 2: %v", len(files), files)
	}

	found := map[string]bool{}
	for _, f := range files {
		found[f] = true
	}
	if !found["a.txt"] {
		t.Error("Walk did not find a.txt")
	}
	if !found["sub/deeper/b.md"] {
		t.Error("Walk did not find sub/deeper/b.md")
	}
}

func TestOSFile_Open(t *testing.T) {
	dir := t.TempDir()
	expected := "line one\nline two\n"
	os.WriteFile(filepath.Join(dir, "content.txt"), []byte(expected), 0644)

	fs := NewOSFileSystem()
	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var fileContent string
	d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if f.RelativePath() == "content.txt" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			fileContent = string(data)
		}
		return nil
	})

	if fileContent != expected {
		t.Errorf("content = %q, want %q", fileContent, expected)
	}
}

func TestOSDirectory_Walk_RecoversCallbackPanic(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644)

	d, err := NewOSFileSystem().Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	err = d.Walk(func(f File, walkErr error) error {
		if f != nil && !f.Info().IsDir() {
			panic("boom")
		}
		return nil
	})
	if err == nil {
		t.Fatal("Walk should convert callback panic to error")
	}
}

func TestOSFileSystem_Walk_SymlinkedRoot(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	os.MkdirAll(filepath.Join(target, "sub"), 0755)
	os.WriteFile(filepath.Join(target, "a.txt"), []byte("one"), 0644)
	os.WriteFile(filepath.Join(target, "sub", "b.txt"), []byte("two"), 0644)

	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	d, err := NewOSFileSystem().Open(link)
	if err != nil {
		t.Fatalf("Open(symlink) error = %v", err)
	}

	var files []string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !f.Info().IsDir() {
			files = append(files, filepath.ToSlash(f.RelativePath()))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(files) != 2 || files[0] != "a.txt" || files[1] != "sub/b.txt" {
		t.Errorf("Walk through symlinked root found %v, want [a.txt sub/b.txt]", files)
	}
}
