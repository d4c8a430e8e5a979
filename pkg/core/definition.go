package core

import "fmt"

// Kind selects how a Definition renders.
type Kind int

const (
	// KindFunction renders by calling Definition.Render.
	KindFunction Kind = iota
	// KindClass renders through a Component created by Definition.New.
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// RenderFunc renders a function component.
type RenderFunc func(props Props, ctx BuildContext) Widget

// Constructor creates a class component instance.
type Constructor func(props Props, ctx BuildContext) Component

// Validator checks a single key of a props or context mapping. It returns
// nil when the value is acceptable.
type Validator func(values map[string]any, key string) error

// TypeSpec declares validators by key.
type TypeSpec map[string]Validator

// Statics is the metadata tooling reads from a definition. Wrappers copy it
// wholesale, so the maps are shared with the original.
type Statics struct {
	DisplayName       string
	ContextTypes      TypeSpec
	ChildContextTypes TypeSpec
	PropTypes         TypeSpec
	DefaultProps      Props
}

// Definition describes a component. Kind is fixed at construction.
type Definition struct {
	// Name is the identifier name of the component.
	Name string
	Kind Kind
	// Render is set for KindFunction.
	Render RenderFunc
	// New is set for KindClass.
	New Constructor
	Statics
}

// Func defines a function component.
func Func(name string, render RenderFunc) *Definition {
	return &Definition{Name: name, Kind: KindFunction, Render: render}
}

// Class defines a class component.
func Class(name string, ctor Constructor) *Definition {
	return &Definition{Name: name, Kind: KindClass, New: ctor}
}

// Label returns the display name, falling back to Name.
func (d *Definition) Label() string {
	if d == nil {
		return "<nil>"
	}
	if d.DisplayName != "" {
		return d.DisplayName
	}
	if d.Name != "" {
		return d.Name
	}
	return "Anonymous"
}

// IsStateless reports whether d is a function component.
func (d *Definition) IsStateless() bool {
	return d.Kind == KindFunction
}

// ComponentWidget places a Definition in the tree with its props.
type ComponentWidget struct {
	Def   *Definition
	Props Props
	key   any
}

// El creates a ComponentWidget, filling absent keys from DefaultProps.
func El(def *Definition, props Props) ComponentWidget {
	return ElKey(def, nil, props)
}

// ElKey is El with an explicit key.
func ElKey(def *Definition, key any, props Props) ComponentWidget {
	merged := make(Props, len(props)+len(def.DefaultProps))
	for k, v := range def.DefaultProps {
		merged[k] = v
	}
	for k, v := range props {
		merged[k] = v
	}
	return ComponentWidget{Def: def, Props: merged, key: key}
}

// CreateElement returns a new ComponentElement.
func (w ComponentWidget) CreateElement() Element {
	return NewComponentElement()
}

// Key returns the widget key.
func (w ComponentWidget) Key() any {
	return w.key
}
