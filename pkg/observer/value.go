package observer

import "sync"

// Value is an observable box. Reads through Get are tracked by the running
// reaction; every Set notifies the reactions that read it.
type Value[T any] struct {
	src   source
	mu    sync.RWMutex
	value T
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value and records the read.
func (v *Value[T]) Get() T {
	track(&v.src)
	return v.Peek()
}

// Peek returns the current value without recording the read.
func (v *Value[T]) Peek() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores value and notifies observers. Writing an equal value still
// notifies.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	v.mu.Unlock()
	v.src.notify()
}

// Update applies transform to the current value and notifies observers.
func (v *Value[T]) Update(transform func(T) T) {
	v.mu.Lock()
	v.value = transform(v.value)
	v.mu.Unlock()
	v.src.notify()
}

// Observers returns the number of reactions currently tracking v.
func (v *Value[T]) Observers() int {
	return v.src.subscribers()
}
