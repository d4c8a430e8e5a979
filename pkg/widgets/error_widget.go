package widgets

import (
	"github.com/go-drift/easystate/pkg/core"
	"github.com/go-drift/easystate/pkg/errors"
)

func init() {
	core.SetErrorWidgetBuilder(func(err *errors.BuildError) core.Widget {
		return ErrorWidget{Error: err}
	})
}

// ErrorWidget replaces a component whose render failed. It shows the
// error details in debug mode and a generic message otherwise.
type ErrorWidget struct {
	core.ContainerBase
	// Error is the render error that occurred.
	Error *errors.BuildError
	// Verbose overrides DebugMode for this widget instance.
	// If not explicitly set, defaults to core.DebugMode.
	Verbose *bool
}

// ChildWidget builds the message column.
func (e ErrorWidget) ChildWidget() core.Widget {
	verbose := core.DebugMode
	if e.Verbose != nil {
		verbose = *e.Verbose
	}

	children := []core.Widget{Text{Content: "Something went wrong"}}
	switch {
	case e.Error == nil:
		children = append(children, Text{Content: "Unknown error"})
	case verbose:
		children = append(children, Text{Content: e.Error.Error()})
	default:
		children = append(children, Text{Content: "An error occurred"})
	}
	return Column{Children: children}
}
