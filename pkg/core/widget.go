package core

// Widget is an immutable description of part of the tree.
type Widget interface {
	CreateElement() Element
	Key() any
}

// BuildContext is the handle a render function receives. It is always the
// element being rendered.
type BuildContext interface {
	Widget() Widget
	Depth() int
	// Context returns the legacy context values visible to this element.
	Context() ContextValues
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	VisitChildren(visitor func(Element) bool)
}

// ParentWidget is a widget with a single child.
type ParentWidget interface {
	Widget
	ChildWidget() Widget
}

// MultiChildWidget is a widget with an ordered list of children.
type MultiChildWidget interface {
	Widget
	ChildWidgets() []Widget
}

// ProviderWidget supplies legacy context to its subtree.
type ProviderWidget interface {
	ParentWidget
	ChildContext() ContextValues
	ChildContextTypes() TypeSpec
}

// BoundaryWidget catches render failures below it and renders a fallback.
type BoundaryWidget interface {
	ParentWidget
	Fallback(err error) Widget
}
