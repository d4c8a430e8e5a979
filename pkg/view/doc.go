// Package view makes components re-render when the observable state they
// read changes.
//
// Wrap takes a component definition and returns one whose render runs
// inside an observer reaction. Any observer.Value or observer.Map read while
// rendering becomes a dependency; writing to it later schedules a re-render
// of exactly the components that read it. Parent-driven prop updates keep
// working, filtered by a shallow prop comparison.
//
//	var todos = observer.NewMap[string, bool]()
//
//	var TodoCount = view.Wrap(core.Func("TodoCount", func(props core.Props, ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: fmt.Sprintf("%d todos", todos.Len())}
//	}))
//
//	todos.Set("write docs", false) // TodoCount re-renders
//
// Class components keep their own receiver. Methods passed as callbacks,
// such as c.handleClick, are Go method values and stay bound to the
// original instance; Unwrap returns that instance from a wrapped one.
//
// The binding is released when the component unmounts, after the
// component's own ComponentWillUnmount has run.
package view
