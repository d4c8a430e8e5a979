package core

import "sync"

// ComponentBase provides the instance API of class components. Embed it in
// a component struct; the runtime attaches the hosting element before the
// first render.
//
//	type todoList struct {
//	    core.ComponentBase
//	}
//
//	func (c *todoList) Render(ctx core.BuildContext) core.Widget { ... }
type ComponentBase struct {
	element   *ComponentElement
	disposers []func()
	disposed  bool
	mu        sync.Mutex
}

// SetElement stores the hosting element. Called by the runtime.
func (c *ComponentBase) SetElement(element *ComponentElement) {
	c.element = element
}

// Element returns the hosting element, or nil before mount.
func (c *ComponentBase) Element() *ComponentElement {
	return c.element
}

// Props returns the committed props.
func (c *ComponentBase) Props() Props {
	if c.element == nil {
		return nil
	}
	return c.element.Props()
}

// State returns the committed state.
func (c *ComponentBase) State() State {
	if c.element == nil {
		return nil
	}
	return c.element.State()
}

// Context returns the declared legacy context values.
func (c *ComponentBase) Context() ContextValues {
	if c.element == nil {
		return nil
	}
	return c.element.Context()
}

// SetState merges partial into the state and schedules a rebuild.
// Safe to call before mount or after unmount (becomes a no-op).
//
// SetState is NOT thread-safe. It must only be called from the UI thread.
func (c *ComponentBase) SetState(partial State) {
	if c.IsDisposed() || c.element == nil {
		return
	}
	c.element.SetState(partial)
}

// ForceUpdate schedules a rebuild that bypasses ShouldComponentUpdate.
func (c *ComponentBase) ForceUpdate() {
	if c.IsDisposed() || c.element == nil {
		return
	}
	c.element.ForceUpdate()
}

// OnDispose registers a cleanup function to run when the component is
// unmounted. Returns a function that unregisters it.
func (c *ComponentBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		cleanup()
		return func() {}
	}

	index := len(c.disposers)
	c.disposers = append(c.disposers, cleanup)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if index < len(c.disposers) {
			c.disposers[index] = nil
		}
	}
}

// RunDisposers executes registered cleanups in reverse order. Called by
// the runtime after ComponentWillUnmount.
func (c *ComponentBase) RunDisposers() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	disposers := c.disposers
	c.disposers = nil
	c.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// IsDisposed returns true once the component has been unmounted.
func (c *ComponentBase) IsDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}
