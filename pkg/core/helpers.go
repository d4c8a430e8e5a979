package core

// LeafBase provides default CreateElement and Key implementations for
// widgets without children. Embed it in your widget struct to satisfy the
// Widget interface without boilerplate:
//
//	type Badge struct {
//	    core.LeafBase
//	    Label string
//	}
type LeafBase struct{}

// CreateElement returns a new LeafElement.
func (LeafBase) CreateElement() Element { return NewLeafElement() }

// Key returns nil (no key).
func (LeafBase) Key() any { return nil }

// ContainerBase provides default CreateElement and Key implementations for
// widgets that implement [MultiChildWidget] or [ParentWidget]:
//
//	type Row struct {
//	    core.ContainerBase
//	    Children []core.Widget
//	}
//
//	func (r Row) ChildWidgets() []core.Widget { return r.Children }
type ContainerBase struct{}

// CreateElement returns a new ContainerElement.
func (ContainerBase) CreateElement() Element { return NewContainerElement() }

// Key returns nil (no key).
func (ContainerBase) Key() any { return nil }

// ProviderBase provides default CreateElement and Key implementations for
// context providers. Embed it along with a child and implement
// [ProviderWidget]:
//
//	type ThemeScope struct {
//	    core.ProviderBase
//	    Theme string
//	    Child core.Widget
//	}
//
//	func (s ThemeScope) ChildWidget() core.Widget            { return s.Child }
//	func (s ThemeScope) ChildContext() core.ContextValues   { return core.ContextValues{"theme": s.Theme} }
//	func (s ThemeScope) ChildContextTypes() core.TypeSpec    { return core.TypeSpec{"theme": core.OfType[string]()} }
type ProviderBase struct{}

// CreateElement returns a new ProviderElement.
func (ProviderBase) CreateElement() Element { return NewProviderElement() }

// Key returns nil (no key).
func (ProviderBase) Key() any { return nil }

// BoundaryBase provides default CreateElement and Key implementations for
// error boundaries. Implement [BoundaryWidget] on the embedding struct.
type BoundaryBase struct{}

// CreateElement returns a new BoundaryElement.
func (BoundaryBase) CreateElement() Element { return NewBoundaryElement() }

// Key returns nil (no key).
func (BoundaryBase) Key() any { return nil }

// Stateful defines an inline class component using closures.
// Use this for quick, self-contained fragments that don't need
// lifecycle hooks or ComponentBase features.
//
//	counter := core.Stateful("Counter",
//	    func() int { return 0 },
//	    func(count int, ctx core.BuildContext, setState func(func(int) int)) core.Widget {
//	        return widgets.TextOf(fmt.Sprintf("Count: %d", count))
//	    },
//	)
//
// The generic parameter is the state type. setState takes a function that
// transforms the current state to a new state; successive calls within one
// frame compose.
//
// For components with lifecycle methods or several state fields, embed
// [ComponentBase] in a named struct instead.
func Stateful[S any](
	name string,
	init func() S,
	render func(state S, ctx BuildContext, setState func(func(S) S)) Widget,
) *Definition {
	return Class(name, func(Props, BuildContext) Component {
		return &inlineComponent[S]{value: init(), renderFn: render}
	})
}

type inlineComponent[S any] struct {
	ComponentBase
	value    S
	renderFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (c *inlineComponent[S]) Render(ctx BuildContext) Widget {
	return c.renderFn(c.value, ctx, c.update)
}

func (c *inlineComponent[S]) update(fn func(S) S) {
	if c.IsDisposed() {
		return
	}
	c.value = fn(c.value)
	c.SetState(nil)
}
