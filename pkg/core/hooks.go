package core

import "github.com/go-drift/easystate/pkg/observer"

// componentHolder is satisfied by any struct that embeds ComponentBase.
type componentHolder interface {
	componentBase() *ComponentBase
}

func (c *ComponentBase) componentBase() *ComponentBase { return c }

// UseController creates a controller and registers it for disposal when the
// component unmounts.
//
//	func (c *player) InitialState() core.State {
//	    c.ticker = core.UseController(c, newTicker)
//	    return nil
//	}
func UseController[C Disposable](c componentHolder, create func() C) C {
	controller := create()
	c.componentBase().OnDispose(controller.Dispose)
	return controller
}

// UseValue subscribes the component to an observable value outside of
// Render: every write forces a rebuild until the component unmounts. Reads
// inside Render of a component wrapped with view.Wrap are tracked without
// this hook.
func UseValue[T any](c componentHolder, value *observer.Value[T]) {
	cb := c.componentBase()
	reaction := observer.Observe(func() T {
		return value.Get()
	}, observer.Options{Scheduler: cb.ForceUpdate})
	cb.OnDispose(func() {
		observer.Unobserve(reaction)
	})
}
