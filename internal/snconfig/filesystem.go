package snconfig

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem is the storage collaborator used by Store.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
	// CreateExclusive creates name for writing and fails with an error matching
	// fs.ErrExist when the file is already present.
	CreateExclusive(name string, perm fs.FileMode) (io.WriteCloser, error)
	Remove(name string) error
	Stat(name string) (fs.FileInfo, error)
}

// OSFileSystem implements FileSystem on top of the os package.
type OSFileSystem struct{}

func (OSFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (OSFileSystem) CreateExclusive(name string, perm fs.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}

func (OSFileSystem) Remove(name string) error {
	return os.Remove(name)
}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
