package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/3-lines-studio/isotodo/internal/adapters/fs"
	"github.com/3-lines-studio/isotodo/internal/core"
)

// PublicHandler serves files from dir. Anything it cannot serve, including
// directories and paths outside dir, goes to next.
type PublicHandler struct {
	fs   fs.FileSystem
	dir  string
	next http.Handler
}

func NewPublicHandler(fsys fs.FileSystem, dir string, next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return &PublicHandler{
		fs:   fsys,
		dir:  dir,
		next: next,
	}
}

func (h *PublicHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		h.next.ServeHTTP(w, req)
		return
	}

	path, ok := core.ResolvePublicPath(h.dir, req.URL.Path)
	if !ok {
		h.next.ServeHTTP(w, req)
		return
	}

	info, err := h.fs.Stat(path)
	if err != nil || info.IsDir() {
		h.next.ServeHTTP(w, req)
		return
	}

	file, err := h.fs.Open(path)
	if err != nil {
		h.next.ServeHTTP(w, req)
		return
	}
	defer func() { _ = file.Close() }()

	content, ok := file.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(file)
		if err != nil {
			h.next.ServeHTTP(w, req)
			return
		}
		content = bytes.NewReader(data)
	}

	w.Header().Set("Content-Type", core.GetContentType(path))
	http.ServeContent(w, req, info.Name(), info.ModTime(), content)
}
