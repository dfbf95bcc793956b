//go:build js

package dom

import (
	"fmt"

	"github.com/3-lines-studio/isotodo/internal/core"
	jsdom "honnef.co/go/js/dom"
)

type Browser struct {
	doc jsdom.Document
	el  jsdom.Element
}

func BrowserTarget(id string) (*Browser, error) {
	doc := jsdom.GetWindow().Document()
	el := doc.GetElementByID(id)
	if el == nil {
		return nil, fmt.Errorf("no element with id %q", id)
	}
	return &Browser{doc: doc, el: el}, nil
}

func (b *Browser) Mount(n *core.Node) error {
	node, err := b.build(n)
	if err != nil {
		return err
	}

	for c := b.el.FirstChild(); c != nil; c = b.el.FirstChild() {
		b.el.RemoveChild(c)
	}
	b.el.AppendChild(node)
	return nil
}

func (b *Browser) build(n *core.Node) (jsdom.Node, error) {
	if n == nil {
		return nil, core.ErrNilNode
	}

	switch n.Kind {
	case core.TextNode:
		return b.doc.CreateTextNode(n.Text), nil
	case core.ElementNode:
		el := b.doc.CreateElement(n.Tag)
		for _, a := range n.Attrs {
			el.SetAttribute(a.Key, a.Val)
		}
		for _, c := range n.Children {
			child, err := b.build(c)
			if err != nil {
				return nil, err
			}
			el.AppendChild(child)
		}
		return el, nil
	default:
		return nil, fmt.Errorf("unknown node kind %d", n.Kind)
	}
}
