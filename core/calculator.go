package core

// Calculator is a unit of work parametrised by its result type T. The
// executor calls Init exactly once (after the dispatch strategy, and
// therefore the batch count, is known), then DoPart once per batch
// (possibly concurrently for distinct batch indices), and finally Result
// exactly once after every DoPart has returned without error.
//
// A failing DoPart precludes Result: the executor never calls Result after
// any batch has failed.
type Calculator[T any] interface {
	// Init allocates whatever per-execution state (target buffer,
	// combine tree, part-result slice) depends on knowing the batch count.
	Init(numberOfBatches int) error
	// NumOps returns the total element or row count. Stable for the
	// lifetime of the execution.
	NumOps() int
	// DoPart processes the half-open interval [from, to). batchIndex is
	// the dense batch number in [0, numberOfBatches) and is how reducers
	// address the combine tree.
	DoPart(from, to, batchIndex int) error
	// Result retrieves the final output. Called at most once, and only
	// after every DoPart has succeeded.
	Result() T
}

// ProgressFunc receives progress in [0,1], or NaN to denote an
// indeterminate / not-yet-started state.
type ProgressFunc func(progress float64)
