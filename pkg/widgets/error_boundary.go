package widgets

import (
	stderrors "errors"

	"github.com/go-drift/easystate/pkg/core"
	"github.com/go-drift/easystate/pkg/errors"
)

// ErrorBoundary catches render errors from descendants and displays a
// fallback instead. Updating the boundary with a new widget clears the
// captured error.
//
//	widgets.ErrorBoundary{
//	    OnError: func(err *errors.BuildError) {
//	        log.Printf("render failed: %v", err)
//	    },
//	    FallbackBuilder: func(err *errors.BuildError) core.Widget {
//	        return widgets.Text{Content: "Failed to load"}
//	    },
//	    Child: core.El(riskyContent, nil),
//	}
type ErrorBoundary struct {
	core.BoundaryBase
	Child core.Widget
	// FallbackBuilder creates the widget shown when an error is caught.
	// If nil, a Text with the error message is shown.
	FallbackBuilder core.ErrorWidgetBuilder
	// OnError is called when the fallback is built. Use for logging.
	OnError   func(*errors.BuildError)
	WidgetKey any
}

func (b ErrorBoundary) Key() any {
	return b.WidgetKey
}

func (b ErrorBoundary) ChildWidget() core.Widget {
	return b.Child
}

// Fallback builds the replacement subtree for err.
func (b ErrorBoundary) Fallback(err error) core.Widget {
	var buildErr *errors.BuildError
	if !stderrors.As(err, &buildErr) {
		buildErr = &errors.BuildError{Err: err}
	}
	if b.OnError != nil {
		b.OnError(buildErr)
	}
	if b.FallbackBuilder != nil {
		return b.FallbackBuilder(buildErr)
	}
	return Text{Content: buildErr.Error()}
}
