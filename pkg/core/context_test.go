package core

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/easystate/pkg/errors"
)

func TestContext_FilteredByContextTypes(t *testing.T) {
	var seen ContextValues
	def := Func("Themed", func(props Props, ctx BuildContext) Widget {
		seen = ctx.Context()
		return nil
	})
	def.ContextTypes = TypeSpec{"theme": OfType[string]()}

	provider := testProvider{
		values: ContextValues{"theme": "dark", "locale": "en"},
		types:  TypeSpec{"theme": Any(), "locale": Any()},
		child:  El(def, nil),
	}
	MountRoot(provider, NewBuildOwner())

	if seen["theme"] != "dark" {
		t.Errorf("expected declared key, got %v", seen)
	}
	if _, ok := seen["locale"]; ok {
		t.Error("undeclared context key should not be visible")
	}
}

func TestContext_EmptyWithoutContextTypes(t *testing.T) {
	var seen ContextValues
	def := Func("Plain", func(props Props, ctx BuildContext) Widget {
		seen = ctx.Context()
		return nil
	})
	MountRoot(testProvider{values: ContextValues{"theme": "dark"}, types: TypeSpec{"theme": Any()}, child: El(def, nil)}, NewBuildOwner())

	if len(seen) != 0 {
		t.Errorf("expected empty context, got %v", seen)
	}
}

func TestContext_NearestProviderWins(t *testing.T) {
	var seen ContextValues
	def := Func("Leaf", func(props Props, ctx BuildContext) Widget {
		seen = ctx.Context()
		return nil
	})
	def.ContextTypes = TypeSpec{"theme": Any()}
	types := TypeSpec{"theme": Any()}

	tree := testProvider{
		values: ContextValues{"theme": "light"},
		types:  types,
		child: testProvider{
			values: ContextValues{"theme": "dark"},
			types:  types,
			child:  El(def, nil),
		},
	}
	MountRoot(tree, NewBuildOwner())

	if seen["theme"] != "dark" {
		t.Errorf("expected nearest provider value, got %v", seen["theme"])
	}
}

type contextComponent struct {
	ComponentBase
	child Widget
}

func (c *contextComponent) ChildContext() ContextValues {
	return ContextValues{"user": "ada", "extra": 1}
}

func (c *contextComponent) Render(ctx BuildContext) Widget { return c.child }

func TestContext_ComponentProviderReportsUndeclaredKeys(t *testing.T) {
	handler, restore := installHandler()
	defer restore()

	var seen ContextValues
	leaf := Func("Leaf", func(props Props, ctx BuildContext) Widget {
		seen = ctx.Context()
		return nil
	})
	leaf.ContextTypes = TypeSpec{"user": Required(OfType[string]())}

	providerDef := testClass("Session", &contextComponent{child: El(leaf, nil)})
	providerDef.ChildContextTypes = TypeSpec{"user": Any()}
	MountRoot(El(providerDef, nil), NewBuildOwner())

	if seen["user"] != "ada" {
		t.Errorf("expected component-provided context, got %v", seen)
	}
	if len(handler.reported) == 0 {
		t.Fatal("expected undeclared child context key to be reported")
	}
	if handler.reported[0].Kind != errors.KindValidation {
		t.Errorf("expected validation kind, got %v", handler.reported[0].Kind)
	}
}

func TestPropTypes_ReportViolations(t *testing.T) {
	handler, restore := installHandler()
	defer restore()

	def := Func("Badge", func(Props, BuildContext) Widget { return nil })
	def.PropTypes = TypeSpec{
		"label": Required(OfType[string]()),
		"size":  OneOf("s", "m", "l"),
		"note":  OfType[string](),
	}
	MountRoot(El(def, Props{"size": "xl"}), NewBuildOwner())

	if len(handler.reported) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(handler.reported))
	}
	propErr, ok := handler.reported[0].Err.(*errors.PropTypeError)
	if !ok {
		t.Fatalf("expected PropTypeError, got %T", handler.reported[0].Err)
	}
	if propErr.Prop != "label" || propErr.Component != "Badge" {
		t.Errorf("unexpected first violation %+v", propErr)
	}
	if !stderrors.Is(propErr, errors.ErrRequired) {
		t.Errorf("missing label should match ErrRequired, got %v", propErr.Err)
	}
	if !stderrors.Is(handler.reported[1].Err, errors.ErrNotAllowed) {
		t.Errorf("size should match ErrNotAllowed, got %v", handler.reported[1].Err)
	}
}

func TestPropTypes_SkippedOutsideDebugMode(t *testing.T) {
	handler, restore := installHandler()
	defer restore()
	SetDebugMode(false)
	defer SetDebugMode(true)

	def := Func("Badge", func(Props, BuildContext) Widget { return nil })
	def.PropTypes = TypeSpec{"label": Required(nil)}
	MountRoot(El(def, nil), NewBuildOwner())

	if len(handler.reported) != 0 {
		t.Errorf("expected no validation outside debug mode, got %d", len(handler.reported))
	}
}

func TestValidators(t *testing.T) {
	values := map[string]any{"n": 1, "s": "x", "nil": nil}

	if err := OfType[int]()(values, "n"); err != nil {
		t.Errorf("OfType[int] rejected int: %v", err)
	}
	if err := OfType[int]()(values, "s"); err == nil {
		t.Error("OfType[int] accepted string")
	}
	if err := OfType[int]()(values, "missing"); err != nil {
		t.Error("OfType should accept missing values")
	}
	if err := Required(nil)(values, "nil"); err == nil {
		t.Error("Required should reject nil")
	}
	if err := OneOf(1, 2)(values, "n"); err != nil {
		t.Errorf("OneOf rejected allowed value: %v", err)
	}
	if err := Any()(values, "anything"); err != nil {
		t.Error("Any should accept everything")
	}
}
