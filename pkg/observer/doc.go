// Package observer is a small dependency-tracking engine.
//
// A Reaction wraps a function. While the reaction runs, every observable
// read (Value.Get, Map.Get, Map.Len, Map.Keys) is recorded as a dependency.
// When a dependency is later written, the reaction's scheduler is invoked,
// or the reaction re-runs itself when no scheduler was supplied.
//
//	count := observer.NewValue(0)
//	r := observer.Observe(func() int {
//	    return count.Get() * 2
//	}, observer.Options{
//	    Lazy:      true,
//	    Scheduler: func() { fmt.Println("count changed") },
//	})
//	r.Run()       // tracks count
//	count.Set(1)  // prints "count changed"
//	observer.Unobserve(r)
//	count.Set(2)  // prints nothing
//
// # Batching
//
// Batch defers notifications until the outermost batch returns, delivering
// at most one notification per reaction:
//
//	observer.Batch(func() {
//	    first.Set("Ada")
//	    last.Set("Lovelace")
//	})
//
// # Threading
//
// Dependency tracking assumes reactions run on a single goroutine (the UI
// thread). Writes from other goroutines are safe, but schedulers run on the
// writer's goroutine; marshal back to the UI thread before touching
// components.
package observer
