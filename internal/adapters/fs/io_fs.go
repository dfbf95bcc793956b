package fs

import (
	iofs "io/fs"
	"strings"
)

// IOFileSystem adapts an io/fs.FS, such as an embed.FS or fstest.MapFS.
type IOFileSystem struct {
	fs iofs.FS
}

func NewIOFileSystem(fsys iofs.FS) *IOFileSystem {
	return &IOFileSystem{fs: fsys}
}

func (fs *IOFileSystem) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, clean(path))
}

func (fs *IOFileSystem) Stat(path string) (iofs.FileInfo, error) {
	return iofs.Stat(fs.fs, clean(path))
}

func (fs *IOFileSystem) Open(path string) (iofs.File, error) {
	return fs.fs.Open(clean(path))
}

func clean(path string) string {
	path = strings.TrimPrefix(path, "./")
	return strings.TrimPrefix(path, "/")
}
