package widgets

import "github.com/go-drift/easystate/pkg/core"

// Column lays out its children in order.
type Column struct {
	core.ContainerBase
	Children  []core.Widget
	WidgetKey any
}

// ColumnOf creates a Column from children, skipping nil entries.
func ColumnOf(children ...core.Widget) Column {
	kept := make([]core.Widget, 0, len(children))
	for _, child := range children {
		if child != nil {
			kept = append(kept, child)
		}
	}
	return Column{Children: kept}
}

func (c Column) Key() any {
	return c.WidgetKey
}

// ChildWidgets returns the children.
func (c Column) ChildWidgets() []core.Widget {
	return c.Children
}
