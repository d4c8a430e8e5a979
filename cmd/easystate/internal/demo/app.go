package demo

import (
	"fmt"

	"github.com/go-drift/easystate/pkg/core"
	"github.com/go-drift/easystate/pkg/view"
	"github.com/go-drift/easystate/pkg/widgets"
)

var storeContext = core.TypeSpec{"store": core.Required(core.OfType[*Store]())}

// New returns the root widget of the demo bound to store.
func New(store *Store) core.Widget {
	return core.El(App, core.Props{"store": store})
}

// App provides the store to the rest of the tree.
var App = func() *core.Definition {
	def := core.Func("App", func(props core.Props, ctx core.BuildContext) core.Widget {
		return widgets.Provider{
			Values: core.ContextValues{"store": props["store"]},
			Types:  storeContext,
			Child: widgets.ColumnOf(
				core.El(Header, nil),
				core.El(TodoList, nil),
				core.El(Footer, nil),
			),
		}
	})
	def.PropTypes = core.TypeSpec{"store": core.Required(core.OfType[*Store]())}
	return view.Wrap(def)
}()

// Header shows how many todos are left.
var Header = func() *core.Definition {
	def := core.Func("Header", func(props core.Props, ctx core.BuildContext) core.Widget {
		store := ctx.Context()["store"].(*Store)
		return widgets.TextOf(fmt.Sprintf("todos: %d left of %d", store.Remaining(), store.Todos.Len()))
	})
	def.ContextTypes = storeContext
	return view.Wrap(def)
}()

// TodoList renders the visible todos.
var TodoList = func() *core.Definition {
	def := core.Class("TodoList", func(props core.Props, ctx core.BuildContext) core.Component {
		return &todoList{}
	})
	def.DisplayName = "Todos"
	def.ContextTypes = storeContext
	return view.Wrap(def)
}()

type todoList struct {
	core.ComponentBase
}

func (l *todoList) store() *Store {
	return l.Context()["store"].(*Store)
}

func (l *todoList) Render(ctx core.BuildContext) core.Widget {
	ids := l.store().Visible()
	if len(ids) == 0 {
		return widgets.TextOf("(nothing to show)")
	}
	items := make([]core.Widget, 0, len(ids))
	for _, id := range ids {
		items = append(items, core.ElKey(TodoItem, id, core.Props{"id": id}))
	}
	return widgets.Column{Children: items}
}

// TodoItem renders one todo by id.
var TodoItem = func() *core.Definition {
	def := core.Func("TodoItem", func(props core.Props, ctx core.BuildContext) core.Widget {
		store := ctx.Context()["store"].(*Store)
		id := props["id"].(int)
		todo, ok := store.Todos.Get(id)
		if !ok {
			return nil
		}
		mark := " "
		if todo.Done {
			mark = "x"
		}
		return widgets.TextOf(fmt.Sprintf("[%s] #%d %s", mark, id, todo.Title))
	})
	def.PropTypes = core.TypeSpec{"id": core.Required(core.OfType[int]())}
	def.ContextTypes = storeContext
	return view.Wrap(def)
}()

// Footer shows the active filter.
var Footer = func() *core.Definition {
	def := core.Func("Footer", func(props core.Props, ctx core.BuildContext) core.Widget {
		store := ctx.Context()["store"].(*Store)
		return widgets.TextOf("filter: " + store.Filter.Get())
	})
	def.ContextTypes = storeContext
	return view.Wrap(def)
}()
