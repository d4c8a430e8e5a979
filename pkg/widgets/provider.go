package widgets

import "github.com/go-drift/easystate/pkg/core"

// Provider exposes Values as legacy context to its subtree. Components see
// the keys they declare in their ContextTypes.
//
//	widgets.Provider{
//	    Values: core.ContextValues{"theme": "dark"},
//	    Types:  core.TypeSpec{"theme": core.OfType[string]()},
//	    Child:  core.El(app, nil),
//	}
type Provider struct {
	core.ProviderBase
	Values core.ContextValues
	// Types declares the provided keys; undeclared keys are reported in
	// debug mode.
	Types     core.TypeSpec
	Child     core.Widget
	WidgetKey any
}

func (p Provider) Key() any {
	return p.WidgetKey
}

func (p Provider) ChildWidget() core.Widget {
	return p.Child
}

func (p Provider) ChildContext() core.ContextValues {
	return p.Values
}

func (p Provider) ChildContextTypes() core.TypeSpec {
	return p.Types
}
