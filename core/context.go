package core

// Context is the execution context supplied by the caller. colx never owns
// threads; it submits closures to Run and relies on IsActive/RequireActive
// for cooperative cancellation.
type Context interface {
	// IsActive reports whether the execution should keep going. Workers
	// check this at batch boundaries.
	IsActive() bool
	// RequireActive returns ErrAborted if IsActive() is false, nil
	// otherwise. A convenience matching the source API's requireActive().
	RequireActive() error
	// Parallelism returns the number of workers available. Callers of
	// Context.Run honour at most this many concurrent goroutines.
	Parallelism() int
	// Run executes every task, blocking until all have completed or the
	// first error has been observed. Run must return that first error (and
	// no other) if any task fails; tasks are independent and Run must not
	// assume any ordering between them.
	Run(tasks []func() error) error
}
