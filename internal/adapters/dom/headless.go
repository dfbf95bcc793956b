package dom

import (
	"fmt"
	"io"

	"github.com/3-lines-studio/isotodo/internal/core"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

type Headless struct {
	el *html.Node
}

func NewHeadless(el *html.Node) (*Headless, error) {
	if el == nil || el.Type != html.ElementNode {
		return nil, fmt.Errorf("mount target must be an element")
	}
	return &Headless{el: el}, nil
}

// Parse loads a full page so targets can be looked up in it.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

func FindByID(doc *goquery.Document, id string) (*Headless, error) {
	sel := doc.Find("#" + id)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("no element with id %q", id)
	}
	return NewHeadless(sel.Get(0))
}

func (h *Headless) Mount(n *core.Node) error {
	child, err := core.ToHTML(n)
	if err != nil {
		return err
	}

	for c := h.el.FirstChild; c != nil; c = h.el.FirstChild {
		h.el.RemoveChild(c)
	}
	h.el.AppendChild(child)
	return nil
}

func (h *Headless) InnerHTML() (string, error) {
	return core.InnerHTML(h.el)
}
