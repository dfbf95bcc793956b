package fs

import (
	iofs "io/fs"
)

// FileSystem reads slash-separated paths, relative to the process working
// directory for the OS implementation.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (iofs.FileInfo, error)
	Open(path string) (iofs.File, error)
}
