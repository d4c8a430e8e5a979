package widgets

import "github.com/go-drift/easystate/pkg/core"

// Text is a leaf widget holding a string.
type Text struct {
	core.LeafBase
	Content string
	// WidgetKey is an optional key for the widget.
	WidgetKey any
}

func (t Text) Key() any {
	return t.WidgetKey
}

// TextOf creates a Text widget.
func TextOf(content string) Text {
	return Text{Content: content}
}
