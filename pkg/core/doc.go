// Package core provides the component runtime: definitions, elements and
// the build owner that schedules re-renders.
//
// # Definitions
//
// A component is described by a Definition, which is one of two variants
// fixed at construction time:
//
//	greeting := core.Func("Greeting", func(props core.Props, ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: "Hello, " + props["name"].(string)}
//	})
//
//	counter := core.Class("Counter", func(props core.Props, ctx core.BuildContext) core.Component {
//	    return &counterComponent{}
//	})
//
// Definitions carry static metadata in Statics: a display name, prop-type
// and context-type declarations, and default props. Use El to place a
// definition in a tree:
//
//	core.El(greeting, core.Props{"name": "Ada"})
//
// # Class Components
//
// Embed ComponentBase in the component struct to get Props, State,
// SetState, ForceUpdate and Context:
//
//	type counterComponent struct {
//	    core.ComponentBase
//	}
//
//	func (c *counterComponent) InitialState() core.State {
//	    return core.State{"count": 0}
//	}
//
//	func (c *counterComponent) Render(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: fmt.Sprint(c.State()["count"])}
//	}
//
// Optional lifecycle hooks are discovered through small interfaces:
// UpdateDecider (ShouldComponentUpdate), Unmounter (ComponentWillUnmount),
// Mounter (ComponentDidMount) and ChildContextProvider (ChildContext).
//
// # Scheduling
//
// SetState, ForceUpdate and prop changes mark an element dirty. The
// BuildOwner collects dirty elements and FlushBuild rebuilds them in depth
// order, so several invalidations before a flush produce a single render.
package core
