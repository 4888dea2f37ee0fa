package dirlist

import "os"

// FileSystem is an interface for directory reads to allow mocking
type FileSystem interface {
	ReadDir(name string) ([]os.DirEntry, error)
}

// OSFileSystem implements FileSystem using os package
type OSFileSystem struct{}

// ReadDir calls os.ReadDir
func (OSFileSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}
