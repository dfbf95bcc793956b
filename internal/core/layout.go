package core

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
)

const DefaultTitle = "Isomorphic Todo"

var ErrTemplateMissing = errors.New("layout template not found")

type LayoutData struct {
	Title   string
	Content template.HTML
}

func ParseLayout(name string, data []byte) (*template.Template, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", name, err)
	}
	return t, nil
}

// InjectContent executes the layout with markup in the content slot. The
// markup comes from our own renderer and is inserted verbatim.
func InjectContent(layout *template.Template, title, markup string) ([]byte, error) {
	if layout == nil {
		return nil, errors.New("layout not loaded")
	}
	if title == "" {
		title = DefaultTitle
	}

	var buf bytes.Buffer
	err := layout.Execute(&buf, LayoutData{
		Title:   title,
		Content: template.HTML(markup),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute layout: %w", err)
	}
	return buf.Bytes(), nil
}
