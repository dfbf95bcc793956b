// Package dom mounts component trees into live document targets. The
// headless target backs tests and tooling; the browser target is compiled
// with the js build tag.
package dom

import "github.com/3-lines-studio/isotodo/internal/core"

// ContentID is the id of the element the layout reserves for the component.
const ContentID = "content"

type Target interface {
	// Mount replaces the target's children with the rendered tree. On error
	// the target is left as it was.
	Mount(n *core.Node) error
}
