package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
)

type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.FromSlash(path))
}

func (fs *OSFileSystem) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(filepath.FromSlash(path))
}

func (fs *OSFileSystem) Open(path string) (iofs.File, error) {
	return os.Open(filepath.FromSlash(path))
}
