package core

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/go-drift/easystate/pkg/errors"
)

func validateProps(def *Definition, props Props) {
	checkSpec("core.validateProps", def.Label(), def.PropTypes, props)
}

// checkSpec runs every validator in spec against values, in key order, and
// reports failures as validation errors.
func checkSpec[M ~map[string]any](op, component string, spec TypeSpec, values M) {
	if len(spec) == 0 {
		return
	}
	keys := make([]string, 0, len(spec))
	for key := range spec {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		validator := spec[key]
		if validator == nil {
			continue
		}
		if err := validator(map[string]any(values), key); err != nil {
			errors.ReportValidation(op, component, &errors.PropTypeError{
				Component: component,
				Prop:      key,
				Reason:    err.Error(),
				Err:       err,
			})
		}
	}
}

// Any accepts any value, including a missing one.
func Any() Validator {
	return func(map[string]any, string) error { return nil }
}

// OfType accepts values assignable to T. Missing values are accepted; wrap
// with Required to reject them.
func OfType[T any]() Validator {
	want := reflect.TypeFor[T]()
	return func(values map[string]any, key string) error {
		value, ok := values[key]
		if !ok || value == nil {
			return nil
		}
		if _, ok := value.(T); !ok {
			return errors.WrongType(key, want.String(), fmt.Sprintf("%T", value))
		}
		return nil
	}
}

// OneOf accepts values equal to one of allowed.
func OneOf(allowed ...any) Validator {
	return func(values map[string]any, key string) error {
		value, ok := values[key]
		if !ok {
			return nil
		}
		for _, candidate := range allowed {
			if reflect.DeepEqual(candidate, value) {
				return nil
			}
		}
		return errors.NotAllowed(key, fmt.Sprintf("%v", allowed), fmt.Sprint(value))
	}
}

// Required rejects missing or nil values, then applies inner if set.
func Required(inner Validator) Validator {
	return func(values map[string]any, key string) error {
		if value, ok := values[key]; !ok || value == nil {
			return errors.Required(key)
		}
		if inner == nil {
			return nil
		}
		return inner(values, key)
	}
}
