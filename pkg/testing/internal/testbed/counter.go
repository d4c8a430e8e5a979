// Package testbed provides internal test components for the testing harness.
package testbed

import (
	"fmt"

	"github.com/go-drift/easystate/pkg/core"
	"github.com/go-drift/easystate/pkg/observer"
	"github.com/go-drift/easystate/pkg/view"
	"github.com/go-drift/easystate/pkg/widgets"
)

// Store is an observable counter shared by Counter components.
type Store struct {
	Label *observer.Value[string]
	Count *observer.Value[int]
}

// NewStore creates a store labelled "count".
func NewStore(initial int) *Store {
	return &Store{
		Label: observer.NewValue("count"),
		Count: observer.NewValue(initial),
	}
}

// Increment adds one to the count.
func (s *Store) Increment() {
	s.Count.Update(func(n int) int { return n + 1 })
}

// Counter renders "<label>: <count>" from the store prop and follows it.
var Counter = view.Wrap(core.Func("Counter", func(props core.Props, ctx core.BuildContext) core.Widget {
	store := props["store"].(*Store)
	return widgets.ColumnOf(
		widgets.Text{Content: fmt.Sprintf("%s: %d", store.Label.Get(), store.Count.Get())},
	)
}))

// CounterOf creates a Counter widget bound to store.
func CounterOf(store *Store) core.ComponentWidget {
	return core.El(Counter, core.Props{"store": store})
}

// Toggle is a class component with local state flipped by Flip.
var Toggle = view.Wrap(core.Class("Toggle", func(props core.Props, ctx core.BuildContext) core.Component {
	return &toggle{}
}))

type toggle struct {
	core.ComponentBase
}

func (t *toggle) InitialState() core.State {
	return core.State{"on": false}
}

// Flip inverts the "on" state.
func (t *toggle) Flip() {
	t.SetState(core.State{"on": !t.State()["on"].(bool)})
}

func (t *toggle) Render(ctx core.BuildContext) core.Widget {
	if t.State()["on"].(bool) {
		return widgets.Text{Content: "on"}
	}
	return widgets.Text{Content: "off"}
}

// Flipper is implemented by the Toggle instance.
type Flipper interface {
	Flip()
}
