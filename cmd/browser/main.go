//go:build js

// Command browser mounts the todo item into the server-rendered page. Build
// it with GopherJS:
//
//	gopherjs build ./cmd/browser -o public/js/app.js
package main

import (
	"fmt"

	"github.com/3-lines-studio/isotodo/internal/adapters/dom"
	"github.com/3-lines-studio/isotodo/internal/component/todo"
)

func main() {
	target, err := dom.BrowserTarget(dom.ContentID)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Same props as the server render.
	if err := target.Mount(todo.Item(todo.DefaultProps)); err != nil {
		fmt.Println(err)
	}
}
