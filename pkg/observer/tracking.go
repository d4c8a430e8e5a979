package observer

import "sync"

// tracker holds the stack of running reactions and the pending batch.
var tracker struct {
	mu         sync.Mutex
	stack      []*reactionBase
	batchDepth int
	pending    []*reactionBase
	queued     map[*reactionBase]bool
}

func push(r *reactionBase) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.stack = append(tracker.stack, r)
}

func pop(r *reactionBase) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	for i := len(tracker.stack) - 1; i >= 0; i-- {
		if tracker.stack[i] == r {
			tracker.stack = append(tracker.stack[:i], tracker.stack[i+1:]...)
			return
		}
	}
}

// current returns the innermost running reaction, or nil.
func current() *reactionBase {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if len(tracker.stack) == 0 {
		return nil
	}
	return tracker.stack[len(tracker.stack)-1]
}

// track records src as a dependency of the running reaction.
func track(src *source) {
	if r := current(); r != nil {
		r.addDep(src)
	}
}

// Untracked runs fn without recording reads against the running reaction.
func Untracked[T any](fn func() T) T {
	tracker.mu.Lock()
	saved := tracker.stack
	tracker.stack = nil
	tracker.mu.Unlock()
	defer func() {
		tracker.mu.Lock()
		tracker.stack = saved
		tracker.mu.Unlock()
	}()
	return fn()
}

// Batch runs fn and delivers the notifications it caused after it returns,
// once per reaction. Nested batches flush when the outermost one returns.
func Batch(fn func()) {
	tracker.mu.Lock()
	tracker.batchDepth++
	tracker.mu.Unlock()

	defer func() {
		tracker.mu.Lock()
		tracker.batchDepth--
		if tracker.batchDepth > 0 {
			tracker.mu.Unlock()
			return
		}
		pending := tracker.pending
		tracker.pending = nil
		clear(tracker.queued)
		tracker.mu.Unlock()

		for _, r := range pending {
			r.trigger()
		}
	}()
	fn()
}

// enqueue defers r if a batch is open. It reports whether r was deferred.
func enqueue(r *reactionBase) bool {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if tracker.batchDepth == 0 {
		return false
	}
	if tracker.queued == nil {
		tracker.queued = make(map[*reactionBase]bool)
	}
	if !tracker.queued[r] {
		tracker.queued[r] = true
		tracker.pending = append(tracker.pending, r)
	}
	return true
}

// dequeue drops r from the pending batch.
func dequeue(r *reactionBase) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if !tracker.queued[r] {
		return
	}
	delete(tracker.queued, r)
	for i, p := range tracker.pending {
		if p == r {
			tracker.pending = append(tracker.pending[:i], tracker.pending[i+1:]...)
			break
		}
	}
}
