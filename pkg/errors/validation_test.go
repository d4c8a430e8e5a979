package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		fields   map[string]string
	}{
		{
			name:     "required",
			err:      Required("label"),
			sentinel: ErrRequired,
			fields:   map[string]string{string(FieldKey): "label"},
		},
		{
			name:     "wrong type",
			err:      WrongType("count", "int", "string"),
			sentinel: ErrWrongType,
			fields: map[string]string{
				string(FieldKey):      "count",
				string(FieldExpected): "int",
				string(FieldActual):   "string",
			},
		},
		{
			name:     "not allowed",
			err:      NotAllowed("size", "[s m l]", "xl"),
			sentinel: ErrNotAllowed,
			fields: map[string]string{
				string(FieldKey):    "size",
				string(FieldActual): "xl",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !stderrors.Is(tt.err, tt.sentinel) {
				t.Fatalf("expected %v to match %v", tt.err, tt.sentinel)
			}
			msg := tt.err.Error()
			for k, v := range tt.fields {
				if needle := k + ": " + v; !strings.Contains(msg, needle) {
					t.Errorf("expected %q in %q", needle, msg)
				}
			}
		})
	}
}

func TestPropTypeErrorUnwrapsValidatorError(t *testing.T) {
	err := &FrameworkError{
		Op:   "core.validateProps",
		Kind: KindValidation,
		Err: &PropTypeError{
			Component: "Badge",
			Prop:      "label",
			Reason:    "missing",
			Err:       Required("label"),
		},
	}
	if !stderrors.Is(err, ErrRequired) {
		t.Errorf("FrameworkError should unwrap to ErrRequired")
	}
	var propErr *PropTypeError
	if !stderrors.As(err, &propErr) || propErr.Prop != "label" {
		t.Errorf("expected PropTypeError for label, got %v", propErr)
	}
}
