package observer

import (
	"sync"

	"github.com/google/uuid"
)

// Options configures a reaction created by Observe.
type Options struct {
	// Scheduler is invoked instead of re-running the reaction when one of its
	// dependencies changes.
	Scheduler func()
	// Lazy defers the first run until Run is called explicitly.
	Lazy bool
}

// Observer is implemented by every reaction. It is the handle Unobserve
// accepts.
type Observer interface {
	ID() uuid.UUID
	IsObserved() bool
	reaction() *reactionBase
}

type reactionBase struct {
	id        uuid.UUID
	mu        sync.Mutex
	deps      []*source
	scheduler func()
	rerun     func()
	running   bool
	released  bool
}

func (r *reactionBase) reaction() *reactionBase { return r }

// ID returns the reaction's diagnostic identifier.
func (r *reactionBase) ID() uuid.UUID {
	return r.id
}

// IsObserved reports whether the reaction still receives notifications.
func (r *reactionBase) IsObserved() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.released
}

// DependencyCount returns the number of observables recorded by the last run.
func (r *reactionBase) DependencyCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.deps)
}

func (r *reactionBase) addDep(src *source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	for _, dep := range r.deps {
		if dep == src {
			return
		}
	}
	r.deps = append(r.deps, src)
	src.subscribe(r)
}

func (r *reactionBase) clearDeps() {
	r.mu.Lock()
	deps := r.deps
	r.deps = nil
	r.mu.Unlock()
	for _, dep := range deps {
		dep.unsubscribe(r)
	}
}

// trigger delivers a change notification. Released reactions ignore it.
func (r *reactionBase) trigger() {
	r.mu.Lock()
	if r.released {
		r.mu.Unlock()
		return
	}
	scheduler := r.scheduler
	rerun := r.rerun
	running := r.running
	r.mu.Unlock()

	if scheduler != nil {
		scheduler()
		return
	}
	if !running && rerun != nil {
		rerun()
	}
}

func (r *reactionBase) release() {
	r.mu.Lock()
	if r.released {
		r.mu.Unlock()
		return
	}
	r.released = true
	r.mu.Unlock()
	r.clearDeps()
	dequeue(r)
}

// Reaction is a function whose observable reads are tracked.
type Reaction[T any] struct {
	reactionBase
	fn func() T
}

// Observe wraps fn in a reaction. Unless opts.Lazy is set, fn runs once
// immediately to collect its dependencies.
func Observe[T any](fn func() T, opts Options) *Reaction[T] {
	r := &Reaction[T]{fn: fn}
	r.id = uuid.New()
	r.scheduler = opts.Scheduler
	r.rerun = func() { r.Run() }
	if !opts.Lazy {
		r.Run()
	}
	return r
}

// Run invokes the wrapped function, replacing the previous dependency set
// with the observables read during this call. A released reaction runs the
// function untracked. Panics from the function propagate to the caller.
func (r *Reaction[T]) Run() T {
	if !r.IsObserved() {
		return r.fn()
	}

	r.clearDeps()
	r.mu.Lock()
	r.running = true
	r.mu.Unlock()

	push(&r.reactionBase)
	defer func() {
		pop(&r.reactionBase)
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()
	return r.fn()
}

// Unobserve releases a reaction: its dependency links are dropped and no
// scheduler call for it runs afterwards, including ones queued by an open
// Batch. Calling it more than once is a no-op.
func Unobserve(o Observer) {
	if o == nil {
		return
	}
	o.reaction().release()
}
