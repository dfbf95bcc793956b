package todo

import (
	"strings"
	"testing"

	"github.com/3-lines-studio/isotodo/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemDefaultProps(t *testing.T) {
	markup, err := core.RenderToString(Item(DefaultProps))
	require.NoError(t, err)

	assert.Equal(t,
		`<div class="todo-item"><input type="checkbox"/><span class="todo-item__name">Write Tutorial</span></div>`,
		markup,
	)
}

func TestItemDone(t *testing.T) {
	node := Item(Props{Done: true, Name: "Ship it"})

	checkbox := node.Children[0]
	_, checked := checkbox.Attr("checked")
	assert.True(t, checked)

	class, _ := node.Children[1].Attr("class")
	assert.Contains(t, class, doneModifier)
}

func TestItemEscapesName(t *testing.T) {
	markup, err := core.RenderToString(Item(Props{Name: `<script>alert("x")</script>`}))
	require.NoError(t, err)

	assert.NotContains(t, markup, "<script>")
	assert.True(t, strings.Contains(markup, "&lt;script&gt;"))
}

func TestItemDoesNotShareState(t *testing.T) {
	a := Item(DefaultProps)
	b := Item(DefaultProps)

	a.Children[1].Children[0].Text = "changed"

	assert.Equal(t, "Write Tutorial", b.Children[1].Children[0].Text)
	assert.Equal(t, "Write Tutorial", DefaultProps.Name)
}
