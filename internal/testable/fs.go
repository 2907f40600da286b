// Package testable provides a file system seam for the CLI so tests can
// inject failures without touching real paths.
package testable

import (
	"os"
)

// FileSystem is the subset of file operations the CLI writes output through.
type FileSystem interface {
	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// Create creates or truncates the named file.
	Create(name string) (*os.File, error)

	// MkdirAll creates a directory named path, along with any necessary parents.
	MkdirAll(path string, perm os.FileMode) error

	// Remove deletes the named file. Used to clean up partial output.
	Remove(name string) error
}

// OsFileSystem delegates to the os package.
type OsFileSystem struct{}

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Create wraps os.Create.
func (OsFileSystem) Create(name string) (*os.File, error) {
	return os.Create(name) //nolint:gosec // caller controls path
}

// MkdirAll wraps os.MkdirAll.
func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove wraps os.Remove.
func (OsFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// DefaultFS is the production FileSystem.
var DefaultFS FileSystem = OsFileSystem{}
