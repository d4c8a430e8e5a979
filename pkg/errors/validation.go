package errors

import "github.com/ygrebnov/errorc"

var namespace = errorc.Namespace("easystate")

// Sentinel errors returned by prop-type validators. Use errors.Is to match.
var (
	ErrRequired   = namespace.NewError("required value missing")
	ErrWrongType  = namespace.NewError("value has wrong type")
	ErrNotAllowed = namespace.NewError("value not allowed")
)

var newKey = errorc.KeyFactory("easystate")

// Structured field keys attached to validation errors.
var (
	FieldKey      = newKey("key", "prop")
	FieldExpected = newKey("expected", "prop")
	FieldActual   = newKey("actual", "prop")
)

// Required reports a missing value for key.
func Required(key string) error {
	return errorc.With(ErrRequired, errorc.String(FieldKey, key))
}

// WrongType reports a value of type actual where expected was declared.
func WrongType(key, expected, actual string) error {
	return errorc.With(
		ErrWrongType,
		errorc.String(FieldKey, key),
		errorc.String(FieldExpected, expected),
		errorc.String(FieldActual, actual),
	)
}

// NotAllowed reports a value outside the declared set.
func NotAllowed(key, allowed, actual string) error {
	return errorc.With(
		ErrNotAllowed,
		errorc.String(FieldKey, key),
		errorc.String(FieldExpected, allowed),
		errorc.String(FieldActual, actual),
	)
}
