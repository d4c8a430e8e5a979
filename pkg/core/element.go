package core

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-drift/easystate/pkg/errors"
)

type elementBase struct {
	widget     Widget
	parent     Element
	depth      int
	slot       any
	buildOwner *BuildOwner
	dirty      bool
	self       Element
	mounted    bool
}

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) parentElement() Element {
	return e.parent
}

func (e *elementBase) setSelf(self Element) {
	e.self = self
}

func (e *elementBase) setBuildOwner(owner *BuildOwner) {
	e.buildOwner = owner
}

func (e *elementBase) isMounted() bool {
	return e.mounted
}

// attach records the parent and marks the element mounted and dirty.
func (e *elementBase) attach(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
	e.dirty = true
}

func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	current := e.parent
	for current != nil {
		if predicate(current) {
			return current
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

// Context returns the context values visible to non-component elements,
// which is everything provided above them.
func (e *elementBase) Context() ContextValues {
	return collectContext(e.parent)
}

// safeBuild executes a render function with panic recovery.
// If the render panics, it reports the error and returns a fallback widget.
func (e *elementBase) safeBuild(component string, buildFn func() Widget) Widget {
	var built Widget
	var buildErr *errors.BuildError

	func() {
		defer func() {
			if r := recover(); r != nil {
				buildErr = &errors.BuildError{
					Component:  component,
					Element:    reflect.TypeOf(e.self).String(),
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		built = buildFn()
	}()

	if buildErr == nil {
		return built
	}

	errors.ReportBuildError(buildErr)

	if boundary := e.findErrorBoundary(); boundary != nil && boundary.CaptureError(buildErr) {
		return nil
	}

	if builder := GetErrorWidgetBuilder(); builder != nil {
		if errWidget := builder(buildErr); errWidget != nil {
			return errWidget
		}
	}
	return errorPlaceholder{err: buildErr}
}

// findErrorBoundary searches ancestors for an error boundary.
func (e *elementBase) findErrorBoundary() ErrorBoundaryCapture {
	found := e.FindAncestor(func(el Element) bool {
		_, ok := el.(ErrorBoundaryCapture)
		return ok
	})
	if found == nil {
		return nil
	}
	return found.(ErrorBoundaryCapture)
}

// errorPlaceholder is rendered when a render fails and no error widget
// builder produced a replacement.
type errorPlaceholder struct {
	err *errors.BuildError
}

func (p errorPlaceholder) CreateElement() Element {
	return NewLeafElement()
}

func (p errorPlaceholder) Key() any {
	return nil
}

// Err returns the failure the placeholder stands in for.
func (p errorPlaceholder) Err() error {
	return p.err
}

// LeafElement hosts a widget with no children.
type LeafElement struct {
	elementBase
}

// NewLeafElement creates a LeafElement. The widget and build owner are set
// during inflation.
func NewLeafElement() *LeafElement {
	element := &LeafElement{}
	element.setSelf(element)
	return element
}

func (e *LeafElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.dirty = false
}

func (e *LeafElement) Update(newWidget Widget) {
	e.widget = newWidget
}

func (e *LeafElement) Unmount() {
	e.mounted = false
}

func (e *LeafElement) RebuildIfNeeded() {
	e.dirty = false
}

func (e *LeafElement) VisitChildren(visitor func(Element) bool) {}

// ContainerElement hosts a ParentWidget or MultiChildWidget.
type ContainerElement struct {
	elementBase
	children []Element
}

// NewContainerElement creates a ContainerElement.
func NewContainerElement() *ContainerElement {
	element := &ContainerElement{}
	element.setSelf(element)
	return element
}

func (e *ContainerElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.RebuildIfNeeded()
}

func (e *ContainerElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *ContainerElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
}

func (e *ContainerElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	e.children = updateChildren(e.children, childWidgetsOf(e.widget), e.self, e.buildOwner)
}

func (e *ContainerElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

func childWidgetsOf(widget Widget) []Widget {
	switch typed := widget.(type) {
	case MultiChildWidget:
		return typed.ChildWidgets()
	case ParentWidget:
		if child := typed.ChildWidget(); child != nil {
			return []Widget{child}
		}
	}
	return nil
}

// ProviderElement hosts a ProviderWidget and exposes its values as legacy
// context to descendants.
type ProviderElement struct {
	ContainerElement
}

// NewProviderElement creates a ProviderElement.
func NewProviderElement() *ProviderElement {
	element := &ProviderElement{}
	element.setSelf(element)
	return element
}

func (e *ProviderElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.validate()
	e.RebuildIfNeeded()
}

func (e *ProviderElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.validate()
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *ProviderElement) childContext() ContextValues {
	return e.widget.(ProviderWidget).ChildContext()
}

func (e *ProviderElement) validate() {
	if !DebugMode {
		return
	}
	provider := e.widget.(ProviderWidget)
	validateChildContext(reflect.TypeOf(e.widget).String(), provider.ChildContextTypes(), provider.ChildContext())
}

// BoundaryElement hosts a BoundaryWidget. A render failure below it
// replaces its subtree with the widget's fallback.
type BoundaryElement struct {
	ContainerElement
	failure error
}

// NewBoundaryElement creates a BoundaryElement.
func NewBoundaryElement() *BoundaryElement {
	element := &BoundaryElement{}
	element.setSelf(element)
	return element
}

// CaptureError records err and schedules the fallback.
func (e *BoundaryElement) CaptureError(err *errors.BuildError) bool {
	e.failure = err
	e.MarkNeedsBuild()
	return true
}

// Failure returns the captured error, if any.
func (e *BoundaryElement) Failure() error {
	return e.failure
}

func (e *BoundaryElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.failure = nil
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *BoundaryElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	if e.failure != nil {
		fallback := e.widget.(BoundaryWidget).Fallback(e.failure)
		var widgets []Widget
		if fallback != nil {
			widgets = []Widget{fallback}
		}
		e.children = updateChildren(e.children, widgets, e.self, e.buildOwner)
		return
	}
	e.children = updateChildren(e.children, childWidgetsOf(e.widget), e.self, e.buildOwner)
}

func (e *BoundaryElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.RebuildIfNeeded()
}

// updateChildren reconciles existing against widgets. Keyed widgets reuse
// the element with the same key wherever it was; unkeyed widgets reuse
// unkeyed elements in order. Elements left unmatched are unmounted.
func updateChildren(existing []Element, widgets []Widget, parent Element, owner *BuildOwner) []Element {
	keyed := make(map[any]Element)
	var unkeyed []Element
	for _, child := range existing {
		key, ok := reconcileKey(child.Widget())
		if _, taken := keyed[key]; ok && !taken {
			keyed[key] = child
		} else {
			// Duplicates fall back to order so every element is either
			// reused or unmounted.
			unkeyed = append(unkeyed, child)
		}
	}
	reportDuplicateKeys(parent, widgets)

	updated := make([]Element, 0, len(widgets))
	next := 0
	for index, childWidget := range widgets {
		var current Element
		if key, ok := reconcileKey(childWidget); ok {
			if match, found := keyed[key]; found {
				current = match
				delete(keyed, key)
			}
		} else if childWidget != nil && next < len(unkeyed) {
			current = unkeyed[next]
			next++
		}
		if child := updateChild(current, childWidget, parent, owner, index); child != nil {
			updated = append(updated, child)
		}
	}

	for _, child := range existing {
		if key, ok := reconcileKey(child.Widget()); ok {
			if keyed[key] == child {
				child.Unmount()
			}
		}
	}
	for _, child := range unkeyed[next:] {
		child.Unmount()
	}
	return updated
}

// reportDuplicateKeys warns about sibling widgets sharing a key. Only the
// first of them can keep its element across updates.
func reportDuplicateKeys(parent Element, widgets []Widget) {
	if !DebugMode || len(widgets) < 2 {
		return
	}
	seen := make(map[any]bool, len(widgets))
	for _, w := range widgets {
		key, ok := reconcileKey(w)
		if !ok {
			continue
		}
		if seen[key] {
			errors.ReportValidation("core.updateChildren", describeElement(parent),
				fmt.Errorf("duplicate key %v among siblings", key))
			continue
		}
		seen[key] = true
	}
}

func describeElement(e Element) string {
	if e == nil || e.Widget() == nil {
		return "<root>"
	}
	if w, ok := e.Widget().(ComponentWidget); ok {
		return w.Def.Label()
	}
	return reflect.TypeOf(e.Widget()).String()
}

// reconcileKey returns the widget's key when it can index a map.
func reconcileKey(widget Widget) (any, bool) {
	if widget == nil {
		return nil, false
	}
	key := widget.Key()
	if key == nil || !reflect.TypeOf(key).Comparable() {
		return nil, false
	}
	return key, true
}

func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner, slot any) Element {
	if widget == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil && canUpdateWidget(existing.Widget(), widget) {
		existing.Update(widget)
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	element := inflateWidget(widget, owner)
	element.Mount(parent, slot)
	return element
}

func canUpdateWidget(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	if prev, ok := existing.(ComponentWidget); ok && prev.Def != next.(ComponentWidget).Def {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setWidget(Widget) }); ok {
		setter.setWidget(widget)
	}
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	if setter, ok := element.(interface{ setSelf(Element) }); ok {
		setter.setSelf(element)
	}
	return element
}

func (e *elementBase) setWidget(widget Widget) {
	e.widget = widget
}

// MountRoot inflates widget and mounts it as the root of a tree owned by
// owner.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	element.Mount(nil, nil)
	return element
}
