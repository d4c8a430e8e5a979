package core

// Props is the configuration passed to a component by its parent.
type Props map[string]any

// State is a component's private mutable state. SetState always produces a
// new map, so a state change is visible as a change of map identity.
type State map[string]any

// ContextValues holds legacy context values passed down the tree.
type ContextValues map[string]any

// Component is a class-like component instance created by a Definition's
// constructor.
type Component interface {
	Render(ctx BuildContext) Widget
}

// UpdateDecider lets a component veto a re-render. It is consulted for prop
// and state updates, but not for ForceUpdate or the first render.
type UpdateDecider interface {
	ShouldComponentUpdate(nextProps Props, nextState State) bool
}

// Unmounter is called once when the component's element is unmounted.
type Unmounter interface {
	ComponentWillUnmount()
}

// Mounter is called once after the component's first render.
type Mounter interface {
	ComponentDidMount()
}

// InitialStater supplies the state a component starts with.
type InitialStater interface {
	InitialState() State
}

// ElementSetter receives the element hosting the component. ComponentBase
// implements it.
type ElementSetter interface {
	SetElement(element *ComponentElement)
}

// ChildContextProvider supplies legacy context values to descendants.
type ChildContextProvider interface {
	ChildContext() ContextValues
}

// Disposable is implemented by controllers that own resources.
type Disposable interface {
	Dispose()
}

type disposer interface {
	RunDisposers()
}
