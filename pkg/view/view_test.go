package view

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/easystate/pkg/core"
	"github.com/go-drift/easystate/pkg/observer"
	"github.com/go-drift/easystate/pkg/widgets"
)

func mount(t *testing.T, widget core.Widget) (*core.ComponentElement, *core.BuildOwner) {
	t.Helper()
	owner := core.NewBuildOwner()
	root := core.MountRoot(widget, owner)
	element, ok := root.(*core.ComponentElement)
	require.True(t, ok, "expected a component element at the root, got %T", root)
	return element, owner
}

func renderedText(t *testing.T, e core.Element) string {
	t.Helper()
	var text string
	e.VisitChildren(func(child core.Element) bool {
		w, ok := child.Widget().(widgets.Text)
		require.True(t, ok, "expected Text child, got %T", child.Widget())
		text = w.Content
		return false
	})
	return text
}

type counter struct {
	core.ComponentBase
	store      *observer.Value[int]
	renders    int
	unmountLog *[]string
	shouldFn   func(core.Props, core.State) bool
	initial    core.State
	clicked    int
}

func (c *counter) InitialState() core.State { return c.initial }

func (c *counter) Render(ctx core.BuildContext) core.Widget {
	c.renders++
	return widgets.Text{Content: fmt.Sprintf("count=%d", c.store.Get())}
}

func (c *counter) ComponentWillUnmount() {
	if c.unmountLog != nil {
		*c.unmountLog = append(*c.unmountLog, "user")
	}
}

func (c *counter) handleClick() {
	c.clicked++
	c.SetState(core.State{"clicked": c.clicked})
}

type vetoCounter struct {
	*counter
}

func (c vetoCounter) ShouldComponentUpdate(nextProps core.Props, nextState core.State) bool {
	return c.shouldFn(nextProps, nextState)
}

func Test_Wrap_StatelessOutputMatchesDirectCall(t *testing.T) {
	render := func(props core.Props, ctx core.BuildContext) core.Widget {
		return widgets.Text{Content: fmt.Sprintf("%v-%v", props["a"], props["b"])}
	}
	def := core.Func("Pair", render)
	props := core.Props{"a": 1, "b": "x"}

	element, _ := mount(t, core.El(Wrap(def), props))

	direct := render(props, element).(widgets.Text)
	assert.Equal(t, direct.Content, renderedText(t, element))
}

func Test_Wrap_ProducesClassDefinition(t *testing.T) {
	stateless := core.Func("Plain", func(core.Props, core.BuildContext) core.Widget { return nil })
	wrapped := Wrap(stateless)

	assert.Equal(t, core.KindClass, wrapped.Kind)
	assert.Equal(t, core.KindFunction, stateless.Kind, "the original must not be modified")
	assert.NotNil(t, wrapped.New)
}

func Test_Wrap_StaticsCopiedByReference(t *testing.T) {
	def := core.Func("Badge", func(core.Props, core.BuildContext) core.Widget { return nil })
	def.DisplayName = "FancyBadge"
	def.PropTypes = core.TypeSpec{"label": core.OfType[string]()}
	def.DefaultProps = core.Props{"label": "new"}
	def.ContextTypes = core.TypeSpec{"theme": core.Any()}
	def.ChildContextTypes = core.TypeSpec{"size": core.Any()}

	wrapped := Wrap(def)

	assert.Equal(t, "FancyBadge", wrapped.DisplayName)
	assert.Equal(t, reflect.ValueOf(def.PropTypes).UnsafePointer(), reflect.ValueOf(wrapped.PropTypes).UnsafePointer())
	assert.Equal(t, reflect.ValueOf(def.DefaultProps).UnsafePointer(), reflect.ValueOf(wrapped.DefaultProps).UnsafePointer())
	assert.Equal(t, reflect.ValueOf(def.ContextTypes).UnsafePointer(), reflect.ValueOf(wrapped.ContextTypes).UnsafePointer())
	assert.Equal(t, reflect.ValueOf(def.ChildContextTypes).UnsafePointer(), reflect.ValueOf(wrapped.ChildContextTypes).UnsafePointer())
}

func Test_Wrap_DisplayNameFallsBackToName(t *testing.T) {
	def := core.Func("Greeting", nil)
	assert.Equal(t, "Greeting", Wrap(def).DisplayName)
	assert.Empty(t, def.DisplayName)
}

func Test_Wrap_DefaultPropsReachWrappedComponent(t *testing.T) {
	def := core.Func("Label", func(props core.Props, ctx core.BuildContext) core.Widget {
		return widgets.Text{Content: props["text"].(string)}
	})
	def.DefaultProps = core.Props{"text": "fallback"}

	element, _ := mount(t, core.El(Wrap(def), nil))
	assert.Equal(t, "fallback", renderedText(t, element))
}

func Test_Wrap_ContextReachesWrappedComponent(t *testing.T) {
	def := core.Func("Themed", func(props core.Props, ctx core.BuildContext) core.Widget {
		theme, _ := ctx.Context()["theme"].(string)
		return widgets.Text{Content: theme}
	})
	def.ContextTypes = core.TypeSpec{"theme": core.OfType[string]()}

	owner := core.NewBuildOwner()
	root := core.MountRoot(widgets.Provider{
		Values: core.ContextValues{"theme": "dark"},
		Types:  core.TypeSpec{"theme": core.Any()},
		Child:  core.El(Wrap(def), nil),
	}, owner)

	var text string
	root.VisitChildren(func(child core.Element) bool {
		text = renderedText(t, child)
		return false
	})
	assert.Equal(t, "dark", text)
}

func Test_Wrap_LazyBindingDoesNotRenderAtConstruction(t *testing.T) {
	renders := 0
	def := core.Func("Lazy", func(core.Props, core.BuildContext) core.Widget {
		renders++
		return nil
	})

	instance := Wrap(def).New(core.Props{}, nil)

	assert.Equal(t, 0, renders)
	require.NotNil(t, Binding(instance))
	assert.True(t, Binding(instance).IsObserved())
}

func Test_Wrap_StoreMutationRerendersStatelessComponent(t *testing.T) {
	name := observer.NewValue("Ada")
	renders := 0
	def := core.Func("Hello", func(props core.Props, ctx core.BuildContext) core.Widget {
		renders++
		return widgets.Text{Content: "hello " + name.Get()}
	})

	element, owner := mount(t, core.El(Wrap(def), nil))
	require.Equal(t, "hello Ada", renderedText(t, element))

	name.Set("Grace")
	owner.FlushBuild()

	assert.Equal(t, 2, renders)
	assert.Equal(t, "hello Grace", renderedText(t, element))
}

func Test_Wrap_StoreMutationRerendersClassComponent(t *testing.T) {
	store := observer.NewValue(1)
	inst := &counter{store: store}
	def := core.Class("Counter", func(core.Props, core.BuildContext) core.Component { return inst })

	element, owner := mount(t, core.El(Wrap(def), nil))
	store.Set(2)
	owner.FlushBuild()

	assert.Equal(t, 2, inst.renders)
	assert.Equal(t, "count=2", renderedText(t, element))
}

func Test_Wrap_MultipleMutationsCoalesceIntoOneRender(t *testing.T) {
	first := observer.NewValue("Ada")
	last := observer.NewValue("Lovelace")
	renders := 0
	def := core.Func("FullName", func(core.Props, core.BuildContext) core.Widget {
		renders++
		return widgets.Text{Content: first.Get() + " " + last.Get()}
	})

	element, owner := mount(t, core.El(Wrap(def), nil))

	first.Set("Grace")
	last.Set("Hopper")
	owner.FlushBuild()
	assert.Equal(t, 2, renders, "two writes in one task should render once")

	frames := 0
	owner.OnNeedsFrame = func() { frames++ }
	observer.Batch(func() {
		first.Set("Katherine")
		last.Set("Johnson")
	})
	owner.FlushBuild()
	assert.Equal(t, 3, renders)
	assert.Equal(t, 1, frames)
	assert.Equal(t, "Katherine Johnson", renderedText(t, element))
}

func Test_Wrap_UnmountRunsUserHookBeforeRelease(t *testing.T) {
	store := observer.NewValue(0)
	var log []string
	inst := &counter{store: store, unmountLog: &log}
	def := core.Class("Counter", func(core.Props, core.BuildContext) core.Component { return inst })

	element, owner := mount(t, core.El(Wrap(def), nil))
	binding := Binding(element.Instance())
	require.NotNil(t, binding)

	element.Unmount()

	assert.Equal(t, []string{"user"}, log)
	assert.False(t, binding.IsObserved())
	assert.Equal(t, 0, store.Observers(), "released binding must not keep dependency links")

	store.Set(5)
	owner.FlushBuild()
	assert.Equal(t, 1, inst.renders, "no update after release")
	assert.False(t, owner.NeedsWork())
}

func Test_Wrap_UserHookObservesLiveBinding(t *testing.T) {
	store := observer.NewValue(0)
	inst := &counter{store: store}
	def := core.Class("Counter", func(core.Props, core.BuildContext) core.Component {
		return &observingUnmount{counter: inst}
	})

	element, _ := mount(t, core.El(Wrap(def), nil))
	wrapper := element.Instance()
	observing := Unwrap(wrapper).(*observingUnmount)
	observing.binding = Binding(wrapper)

	element.Unmount()

	assert.True(t, observing.observedAtUnmount, "user hook must run before the binding is released")
	assert.False(t, observing.binding.IsObserved())
}

type observingUnmount struct {
	*counter
	binding           observer.Observer
	observedAtUnmount bool
}

func (o *observingUnmount) ComponentWillUnmount() {
	o.observedAtUnmount = o.binding.IsObserved()
}

func Test_ShouldComponentUpdate_ShallowPropRule(t *testing.T) {
	def := core.Func("Pair", func(core.Props, core.BuildContext) core.Widget { return nil })
	element, _ := mount(t, core.El(Wrap(def), core.Props{"a": 1, "b": 2}))
	decider := element.Instance().(core.UpdateDecider)
	state := element.State()

	assert.False(t, decider.ShouldComponentUpdate(core.Props{"a": 1, "b": 2}, state))
	assert.True(t, decider.ShouldComponentUpdate(core.Props{"a": 1, "b": 3}, state))
	assert.True(t, decider.ShouldComponentUpdate(core.Props{"a": 1}, state))
	assert.True(t, decider.ShouldComponentUpdate(core.Props{"a": 1, "c": 2}, state))
}

func Test_ShouldComponentUpdate_StateIdentityChange(t *testing.T) {
	def := core.Func("Pair", func(core.Props, core.BuildContext) core.Widget { return nil })
	element, _ := mount(t, core.El(Wrap(def), core.Props{"a": 1}))
	decider := element.Instance().(core.UpdateDecider)

	assert.NotNil(t, element.State(), "wrapped components always have a state bag")
	assert.True(t, decider.ShouldComponentUpdate(core.Props{"a": 1}, core.State{}))
}

func Test_ShouldComponentUpdate_UserVetoWins(t *testing.T) {
	store := observer.NewValue(0)
	inst := &counter{store: store}
	inst.shouldFn = func(core.Props, core.State) bool { return false }
	def := core.Class("Counter", func(core.Props, core.BuildContext) core.Component {
		return vetoCounter{inst}
	})

	element, owner := mount(t, core.El(Wrap(def), core.Props{"a": 1}))
	decider := element.Instance().(core.UpdateDecider)

	assert.False(t, decider.ShouldComponentUpdate(core.Props{"a": 2}, core.State{"x": 1}))

	store.Set(1)
	owner.FlushBuild()
	assert.Equal(t, 1, inst.renders, "user veto applies to reactive updates too")
}

func Test_ShouldComponentUpdate_UserApprovalStillFiltersProps(t *testing.T) {
	store := observer.NewValue(0)
	inst := &counter{store: store}
	inst.shouldFn = func(core.Props, core.State) bool { return true }
	def := core.Class("Counter", func(core.Props, core.BuildContext) core.Component {
		return vetoCounter{inst}
	})

	element, _ := mount(t, core.El(Wrap(def), core.Props{"a": 1}))
	decider := element.Instance().(core.UpdateDecider)

	assert.False(t, decider.ShouldComponentUpdate(core.Props{"a": 1}, element.State()))
}

func Test_Scheduler_SetsExplicitFlag(t *testing.T) {
	store := observer.NewValue(0)
	def := core.Func("Reader", func(core.Props, core.BuildContext) core.Widget {
		return widgets.Text{Content: fmt.Sprint(store.Get())}
	})
	element, owner := mount(t, core.El(Wrap(def), nil))
	r := element.Instance().(*reactive)

	store.Set(1)
	assert.True(t, r.scheduled)
	owner.FlushBuild()
	assert.False(t, r.scheduled, "the flag is consumed by the update decision")
}

func Test_Scheduler_FlagConsumedByForcedRender(t *testing.T) {
	store := observer.NewValue(0)
	inst := &counter{store: store}
	def := core.Class("Counter", func(core.Props, core.BuildContext) core.Component { return inst })
	element, owner := mount(t, core.El(Wrap(def), core.Props{"a": 1}))
	r := element.Instance().(*reactive)

	store.Set(1)
	inst.ForceUpdate()
	owner.FlushBuild()

	assert.Equal(t, 2, inst.renders)
	assert.False(t, r.scheduled, "a forced render consumes the reactive flag")
	assert.False(t, r.ShouldComponentUpdate(core.Props{"a": 1}, element.State()),
		"a later update with identical props and state must not render")
}

func Test_Wrap_DuplicateKeyedSiblingsReleaseBindings(t *testing.T) {
	store := observer.NewValue(0)
	show := observer.NewValue(true)
	item := Wrap(core.Func("Item", func(core.Props, core.BuildContext) core.Widget {
		return widgets.Text{Content: fmt.Sprint(store.Get())}
	}))
	list := Wrap(core.Func("List", func(core.Props, core.BuildContext) core.Widget {
		if !show.Get() {
			return widgets.Column{}
		}
		return widgets.ColumnOf(core.ElKey(item, 1, nil), core.ElKey(item, 1, nil))
	}))

	_, owner := mount(t, core.El(list, nil))
	require.Equal(t, 2, store.Observers())

	for _, next := range []bool{false, true, false} {
		show.Set(next)
		owner.FlushBuild()
	}

	assert.Equal(t, 0, store.Observers(), "no binding outlives its instance")
}

func Test_ParentRerenderWithSamePropsSkipsChild(t *testing.T) {
	childRenders := 0
	child := Wrap(core.Func("Child", func(props core.Props, ctx core.BuildContext) core.Widget {
		childRenders++
		return widgets.Text{Content: fmt.Sprint(props["n"])}
	}))
	tick := observer.NewValue(0)
	n := 1
	parent := Wrap(core.Func("Parent", func(core.Props, core.BuildContext) core.Widget {
		tick.Get()
		return core.El(child, core.Props{"n": n})
	}))

	_, owner := mount(t, core.El(parent, nil))
	tick.Set(1)
	owner.FlushBuild()
	assert.Equal(t, 1, childRenders, "unchanged props should not rerender the child")

	n = 2
	tick.Set(2)
	owner.FlushBuild()
	assert.Equal(t, 2, childRenders)
}

func Test_Wrap_ClassKeepsInitialStateAndBoundMethods(t *testing.T) {
	inst := &counter{store: observer.NewValue(0), initial: core.State{"clicked": 0}}
	def := core.Class("Counter", func(core.Props, core.BuildContext) core.Component { return inst })

	element, owner := mount(t, core.El(Wrap(def), nil))
	assert.Equal(t, 0, element.State()["clicked"])

	original, ok := Unwrap(element.Instance()).(*counter)
	require.True(t, ok)
	onClick := original.handleClick
	onClick()
	owner.FlushBuild()

	assert.Equal(t, 1, inst.clicked)
	assert.Equal(t, 1, element.State()["clicked"])
	assert.Equal(t, 2, inst.renders)
}

func Test_Wrap_DoesNotRecoverRenderPanics(t *testing.T) {
	def := core.Func("Broken", func(core.Props, core.BuildContext) core.Widget {
		panic("render failed")
	})
	instance := Wrap(def).New(core.Props{}, nil).(*reactive)
	instance.element = core.NewComponentElement()

	assert.PanicsWithValue(t, "render failed", func() {
		instance.Render(nil)
	})
}

func Test_Unwrap_NonWrapped(t *testing.T) {
	inst := &counter{}
	assert.Same(t, inst, Unwrap(inst))
	assert.Nil(t, Binding(inst))
}
