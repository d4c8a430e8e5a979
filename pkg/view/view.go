package view

import (
	"github.com/go-drift/easystate/pkg/core"
	"github.com/go-drift/easystate/pkg/observer"
)

// Wrap returns a class definition that renders def through a lazy observer
// reaction. The static metadata of def is copied once; its maps are shared
// with def, not cloned. Wrap does not recover panics raised by def.
func Wrap(def *core.Definition) *core.Definition {
	wrapped := &core.Definition{
		Name:    def.Name,
		Kind:    core.KindClass,
		Statics: def.Statics,
	}
	if wrapped.DisplayName == "" {
		wrapped.DisplayName = def.Name
	}
	wrapped.New = func(props core.Props, ctx core.BuildContext) core.Component {
		return newReactive(def, props, ctx)
	}
	return wrapped
}

// reactive is the instance behind a wrapped definition. For class
// definitions it composes the original instance; for function definitions
// inner is nil.
type reactive struct {
	def     *core.Definition
	inner   core.Component
	element *core.ComponentElement
	ctx     core.BuildContext
	render  *observer.Reaction[core.Widget]
	// scheduled is set by the reaction's scheduler and consumed by the next
	// update decision.
	scheduled bool
}

func newReactive(def *core.Definition, props core.Props, ctx core.BuildContext) *reactive {
	c := &reactive{def: def, ctx: ctx}
	if def.Kind == core.KindClass {
		c.inner = def.New(props, ctx)
	}
	c.render = observer.Observe(c.renderOriginal, observer.Options{
		Lazy:      true,
		Scheduler: c.schedule,
	})
	return c
}

// schedule requests a re-render after a tracked dependency changed.
func (c *reactive) schedule() {
	if c.element == nil {
		return
	}
	c.scheduled = true
	c.element.SetState(nil)
}

// SetElement attaches the hosting element to the wrapper and the original
// instance.
func (c *reactive) SetElement(element *core.ComponentElement) {
	c.element = element
	if setter, ok := c.inner.(core.ElementSetter); ok {
		setter.SetElement(element)
	}
}

// InitialState returns the original instance's initial state, or an empty
// state so the state bag is never nil.
func (c *reactive) InitialState() core.State {
	if initial, ok := c.inner.(core.InitialStater); ok {
		if state := initial.InitialState(); state != nil {
			return state
		}
	}
	return core.State{}
}

// Render runs the original render inside the reaction, recording the
// observables it reads. A render consumes any pending reactive update,
// including one that a forced rebuild skipped the update decision for.
func (c *reactive) Render(ctx core.BuildContext) core.Widget {
	c.scheduled = false
	c.ctx = ctx
	return c.render.Run()
}

func (c *reactive) renderOriginal() core.Widget {
	if c.inner == nil {
		return c.def.Render(c.element.Props(), c.ctx)
	}
	return c.inner.Render(c.ctx)
}

// ShouldComponentUpdate gives the original instance a veto, then renders
// for reactive or state updates, then falls back to a shallow prop
// comparison.
func (c *reactive) ShouldComponentUpdate(nextProps core.Props, nextState core.State) bool {
	scheduled := c.scheduled
	c.scheduled = false

	if decider, ok := c.inner.(core.UpdateDecider); ok && !decider.ShouldComponentUpdate(nextProps, nextState) {
		return false
	}
	if scheduled || !sameMap(c.element.State(), nextState) {
		return true
	}
	return !ShallowEqual(c.element.Props(), nextProps)
}

// ComponentDidMount forwards to the original instance.
func (c *reactive) ComponentDidMount() {
	if mounter, ok := c.inner.(core.Mounter); ok {
		mounter.ComponentDidMount()
	}
}

// ComponentWillUnmount runs the original hook, then releases the reaction.
func (c *reactive) ComponentWillUnmount() {
	if unmounter, ok := c.inner.(core.Unmounter); ok {
		unmounter.ComponentWillUnmount()
	}
	observer.Unobserve(c.render)
}

// RunDisposers forwards to the original instance's disposers.
func (c *reactive) RunDisposers() {
	if d, ok := c.inner.(interface{ RunDisposers() }); ok {
		d.RunDisposers()
	}
}

// ChildContext forwards to the original instance.
func (c *reactive) ChildContext() core.ContextValues {
	if provider, ok := c.inner.(core.ChildContextProvider); ok {
		return provider.ChildContext()
	}
	return nil
}

// Unwrap returns the original instance behind a wrapped component, or c
// itself when it is not wrapped. Function components have no instance and
// yield nil.
func Unwrap(c core.Component) core.Component {
	if r, ok := c.(*reactive); ok {
		return r.inner
	}
	return c
}

// Binding returns the reaction behind a wrapped component, or nil.
func Binding(c core.Component) observer.Observer {
	if r, ok := c.(*reactive); ok {
		return r.render
	}
	return nil
}
