package dircheck

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem abstracts directory operations for testability.
type FileSystem interface {
	MkdirAll(path string, perm fs.FileMode) error
	WriteProbe(dir string) error
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// MkdirAll creates the directory and any missing parents.
func (r *RealFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteProbe verifies write permission by creating and removing a
// scratch file inside dir. Read-only mounts and ACLs only surface on
// an actual write, not in the mode bits.
func (r *RealFileSystem) WriteProbe(dir string) error {
	f, err := os.CreateTemp(dir, ".envdoctor-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Remove(filepath.Clean(name))
}
