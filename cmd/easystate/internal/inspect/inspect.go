// Package inspect renders a mounted element tree as text.
package inspect

import (
	"fmt"
	"reflect"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/go-drift/easystate/pkg/core"
	"github.com/go-drift/easystate/pkg/widgets"
)

// Lines returns the content of every Text under root in tree order.
func Lines(root core.Element) []string {
	var lines []string
	walk(root, func(e core.Element) {
		if text, ok := e.Widget().(widgets.Text); ok {
			lines = append(lines, text.Content)
		}
	})
	return lines
}

// Count returns the number of elements under root, root included.
func Count(root core.Element) int {
	n := 0
	walk(root, func(core.Element) { n++ })
	return n
}

// Tree builds a drawable tree mirroring the element tree under root.
func Tree(root core.Element) *tree.Tree {
	t := tree.NewTree(tree.NodeString(Label(root)))
	addChildren(t, root)
	return t
}

func addChildren(t *tree.Tree, e core.Element) {
	e.VisitChildren(func(child core.Element) bool {
		addChildren(t.AddChild(tree.NodeString(Label(child))), child)
		return true
	})
}

// Label describes one element: component label and key for components,
// quoted content for text, widget type otherwise.
func Label(e core.Element) string {
	switch w := e.Widget().(type) {
	case core.ComponentWidget:
		if key := w.Key(); key != nil {
			return fmt.Sprintf("<%s key=%v>", w.Def.Label(), key)
		}
		return fmt.Sprintf("<%s>", w.Def.Label())
	case widgets.Text:
		return fmt.Sprintf("%q", w.Content)
	default:
		t := reflect.TypeOf(w)
		if t == nil {
			return "<nil>"
		}
		return t.Name()
	}
}

func walk(e core.Element, visit func(core.Element)) {
	visit(e)
	e.VisitChildren(func(child core.Element) bool {
		walk(child, visit)
		return true
	})
}
