package core

import "github.com/go-drift/easystate/pkg/errors"

// testText is a leaf widget for tests.
type testText struct {
	LeafBase
	content string
}

// keyedText is a leaf widget carrying a key.
type keyedText struct {
	LeafBase
	key string
}

func (w keyedText) Key() any { return w.key }

// testColumn is a multi-child widget for tests.
type testColumn struct {
	ContainerBase
	children []Widget
}

func (w testColumn) ChildWidgets() []Widget { return w.children }

// testProvider supplies legacy context.
type testProvider struct {
	ProviderBase
	values ContextValues
	types  TypeSpec
	child  Widget
}

func (w testProvider) ChildWidget() Widget         { return w.child }
func (w testProvider) ChildContext() ContextValues { return w.values }
func (w testProvider) ChildContextTypes() TypeSpec { return w.types }

// testBoundary renders fallback text on failure.
type testBoundary struct {
	BoundaryBase
	child Widget
}

func (w testBoundary) ChildWidget() Widget { return w.child }
func (w testBoundary) Fallback(err error) Widget {
	return testText{content: "failed: " + err.Error()}
}

// testComponent is a configurable class component.
type testComponent struct {
	ComponentBase
	initial     State
	renderFn    func(c *testComponent) Widget
	shouldFn    func(nextProps Props, nextState State) bool
	renders     int
	unmounted   int
	mounted     int
}

func (c *testComponent) InitialState() State { return c.initial }

func (c *testComponent) Render(ctx BuildContext) Widget {
	c.renders++
	if c.renderFn != nil {
		return c.renderFn(c)
	}
	return testText{content: "component"}
}

func (c *testComponent) ComponentDidMount()    { c.mounted++ }
func (c *testComponent) ComponentWillUnmount() { c.unmounted++ }

type deciderComponent struct {
	*testComponent
}

func (c deciderComponent) ShouldComponentUpdate(nextProps Props, nextState State) bool {
	return c.shouldFn(nextProps, nextState)
}

// testClass returns a definition whose constructor yields inst.
func testClass(name string, inst Component) *Definition {
	return Class(name, func(Props, BuildContext) Component { return inst })
}

// testErrorHandler captures reports for assertions.
type testErrorHandler struct {
	errors.LogHandler
	buildErrors []*errors.BuildError
	reported    []*errors.FrameworkError
}

func (h *testErrorHandler) HandleBuildError(err *errors.BuildError) {
	h.buildErrors = append(h.buildErrors, err)
}

func (h *testErrorHandler) HandleError(err *errors.FrameworkError) {
	h.reported = append(h.reported, err)
}

// installHandler captures reports and resets the error widget builder to
// the default, which other packages linked into the test binary may have
// replaced. The returned func restores both.
func installHandler() (*testErrorHandler, func()) {
	handler := &testErrorHandler{}
	errors.SetHandler(handler)
	previous := GetErrorWidgetBuilder()
	SetErrorWidgetBuilder(DefaultErrorWidgetBuilder)
	return handler, func() {
		errors.SetHandler(nil)
		SetErrorWidgetBuilder(previous)
	}
}

func firstChild(e Element) Element {
	var found Element
	e.VisitChildren(func(child Element) bool {
		found = child
		return false
	})
	return found
}
