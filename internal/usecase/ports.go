package usecase

import (
	"time"

	"github.com/3-lines-studio/isotodo/internal/adapters/fs"
	"github.com/3-lines-studio/isotodo/internal/core"
)

// Component produces the tree for a page. It is called once per render and
// must not keep state between calls.
type Component func() (*core.Node, error)

type Page struct {
	Pattern   string
	Title     string
	Component Component
}

type RenderObserver interface {
	ObserveRender(page string, d time.Duration, err error)
}

type FileSystem = fs.FileSystem
