package core

// ComponentElement hosts a ComponentWidget. It owns the props and state of
// one component instance and decides, on each rebuild, whether to render.
type ComponentElement struct {
	elementBase
	def       *Definition
	instance  Component
	props     Props
	state     State
	nextProps Props
	nextState State
	hasNext   bool
	forced    bool
	rendered  bool
	context   ContextValues
	child     Element
}

// NewComponentElement creates a ComponentElement. The widget and build owner
// are set during inflation.
func NewComponentElement() *ComponentElement {
	element := &ComponentElement{}
	element.setSelf(element)
	return element
}

func (e *ComponentElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	widget := e.widget.(ComponentWidget)
	e.def = widget.Def
	e.props = widget.Props
	e.validateProps(e.props)
	e.context = resolveContext(e.parent, e.def)

	if e.def.Kind == KindClass {
		e.instance = e.def.New(e.props, e)
		if setter, ok := e.instance.(ElementSetter); ok {
			setter.SetElement(e)
		}
		if initial, ok := e.instance.(InitialStater); ok {
			e.state = initial.InitialState()
		}
	}

	e.RebuildIfNeeded()

	if mounter, ok := e.instance.(Mounter); ok && e.mounted {
		mounter.ComponentDidMount()
	}
}

func (e *ComponentElement) Update(newWidget Widget) {
	widget := newWidget.(ComponentWidget)
	e.widget = newWidget
	e.nextProps = widget.Props
	e.validateProps(widget.Props)
	e.context = resolveContext(e.parent, e.def)
	e.MarkNeedsBuild()
}

func (e *ComponentElement) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	if unmounter, ok := e.instance.(Unmounter); ok {
		unmounter.ComponentWillUnmount()
	}
	if d, ok := e.instance.(disposer); ok {
		d.RunDisposers()
	}
}

func (e *ComponentElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false

	nextProps := e.props
	if e.nextProps != nil {
		nextProps = e.nextProps
	}
	nextState := e.state
	if e.hasNext {
		nextState = e.nextState
	}
	forced := e.forced
	e.nextProps, e.nextState, e.hasNext, e.forced = nil, nil, false, false

	shouldRender := true
	if e.rendered && !forced {
		if decider, ok := e.instance.(UpdateDecider); ok {
			shouldRender = decider.ShouldComponentUpdate(nextProps, nextState)
		}
	}

	e.props, e.state = nextProps, nextState
	if !shouldRender {
		return
	}
	e.rendered = true

	built := e.safeBuild(e.def.Label(), e.render)
	e.child = updateChild(e.child, built, e, e.buildOwner, nil)
}

func (e *ComponentElement) render() Widget {
	if e.def.Kind == KindFunction {
		return e.def.Render(e.props, e)
	}
	return e.instance.Render(e)
}

func (e *ComponentElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// Definition returns the definition this element hosts.
func (e *ComponentElement) Definition() *Definition {
	return e.def
}

// Instance returns the component instance, or nil for function components.
func (e *ComponentElement) Instance() Component {
	return e.instance
}

// Props returns the committed props.
func (e *ComponentElement) Props() Props {
	return e.props
}

// State returns the committed state.
func (e *ComponentElement) State() State {
	return e.state
}

// Context returns the legacy context values declared in ContextTypes.
func (e *ComponentElement) Context() ContextValues {
	return e.context
}

// SetState merges partial into a copy of the pending state and schedules a
// rebuild. The result is always a new map, even for a nil partial. It is a
// no-op once the element is unmounted.
func (e *ComponentElement) SetState(partial State) {
	if !e.mounted {
		return
	}
	base := e.state
	if e.hasNext {
		base = e.nextState
	}
	next := make(State, len(base)+len(partial))
	for k, v := range base {
		next[k] = v
	}
	for k, v := range partial {
		next[k] = v
	}
	e.nextState = next
	e.hasNext = true
	e.MarkNeedsBuild()
}

// ForceUpdate schedules a rebuild that skips ShouldComponentUpdate.
func (e *ComponentElement) ForceUpdate() {
	if !e.mounted {
		return
	}
	e.forced = true
	e.MarkNeedsBuild()
}

// childContext returns the values this component provides to descendants.
func (e *ComponentElement) childContext() ContextValues {
	provider, ok := e.instance.(ChildContextProvider)
	if !ok {
		return nil
	}
	values := provider.ChildContext()
	if values != nil && DebugMode {
		validateChildContext(e.def.Label(), e.def.ChildContextTypes, values)
	}
	return values
}

func (e *ComponentElement) validateProps(props Props) {
	if !DebugMode {
		return
	}
	validateProps(e.def, props)
}
