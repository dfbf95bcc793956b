package core

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrNilNode = errors.New("nil node")

func ToHTML(n *Node) (*html.Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}

	switch n.Kind {
	case TextNode:
		return &html.Node{Type: html.TextNode, Data: n.Text}, nil
	case ElementNode:
		if n.Tag == "" {
			return nil, fmt.Errorf("element without tag")
		}
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(n.Tag)),
		}
		for _, a := range n.Attrs {
			el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
		for i, c := range n.Children {
			child, err := ToHTML(c)
			if err != nil {
				return nil, fmt.Errorf("<%s> child %d: %w", n.Tag, i, err)
			}
			el.AppendChild(child)
		}
		return el, nil
	default:
		return nil, fmt.Errorf("unknown node kind %d", n.Kind)
	}
}

func RenderToString(n *Node) (string, error) {
	h, err := ToHTML(n)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := html.Render(&sb, h); err != nil {
		return "", fmt.Errorf("failed to serialize markup: %w", err)
	}
	return sb.String(), nil
}

// InnerHTML serializes the children of n, the way a browser reports
// element.innerHTML.
func InnerHTML(n *html.Node) (string, error) {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
