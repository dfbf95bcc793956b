// Package todo holds the todo item component shared by the server and the
// browser entry points.
package todo

import "github.com/3-lines-studio/isotodo/internal/core"

type Props struct {
	Done bool   `json:"done"`
	Name string `json:"name"`
}

// DefaultProps is the state both entry points render. Keep them in step.
var DefaultProps = Props{Done: false, Name: "Write Tutorial"}

const (
	className     = "todo-item"
	nameClassName = "todo-item__name"
	doneModifier  = "todo-item__name--done"
)

func Item(p Props) *core.Node {
	checkbox := []core.Attr{core.A("type", "checkbox")}
	if p.Done {
		checkbox = append(checkbox, core.A("checked", ""))
	}

	nameClass := nameClassName
	if p.Done {
		nameClass += " " + doneModifier
	}

	return core.El("div", []core.Attr{core.A("class", className)},
		core.El("input", checkbox),
		core.El("span", []core.Attr{core.A("class", nameClass)}, core.Text(p.Name)),
	)
}
