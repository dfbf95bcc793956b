package core

type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
)

type Attr struct {
	Key string
	Val string
}

// Node is the output of a component. Both the string renderer and the DOM
// adapters walk the same tree, so they cannot disagree on structure.
type Node struct {
	Kind     NodeKind
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

func El(tag string, attrs []Attr, children ...*Node) *Node {
	return &Node{
		Kind:     ElementNode,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

func Text(s string) *Node {
	return &Node{Kind: TextNode, Text: s}
}

func A(key, val string) Attr {
	return Attr{Key: key, Val: val}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
