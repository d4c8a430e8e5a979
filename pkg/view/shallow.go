package view

import (
	"reflect"

	"github.com/go-drift/easystate/pkg/core"
)

// ShallowEqual reports whether a and b have the same keys and identical
// values under each key.
func ShallowEqual(a, b core.Props) bool {
	if len(a) != len(b) {
		return false
	}
	for key, next := range b {
		prev, ok := a[key]
		if !ok || !identical(prev, next) {
			return false
		}
	}
	return true
}

// identical compares by identity: reference kinds by address, comparable
// values by ==. Funcs and non-comparable values are never identical unless
// both are nil.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len()
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// sameMap reports whether two state maps are the same map.
func sameMap(a, b core.State) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}
