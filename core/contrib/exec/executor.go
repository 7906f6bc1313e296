package exec

import (
	"math"
	"sync/atomic"

	"github.com/gocolx/colx/core"
)

// Executor picks between the two dispatch strategies and
// drives a core.Calculator[T] to completion over a core.Context.
type Executor struct{}

// NewExecutor returns a ready-to-use Executor. Executor holds no state
// between calls, so a zero value also works; NewExecutor exists purely for
// call-site symmetry with other constructors in this module.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs calc to completion. progress may be nil, in which case no
// progress is reported. Execute returns calc.Result() and a nil error only
// if every batch succeeded; otherwise the zero value of T and the first
// observed error (core.ErrAborted or whatever the operator/reducer/
// combiner produced) are returned, and calc.Result() is never called.
func Execute[T any](ctx core.Context, calc core.Calculator[T], workload core.Workload, progress core.ProgressFunc) (T, error) {
	var zero T
	if progress == nil {
		progress = func(float64) {}
	}

	n := calc.NumOps()
	p := ctx.Parallelism()
	if p < 1 {
		p = 1
	}
	b := workload.BatchSize()
	tPar := workload.ParallelThreshold()

	sentinel := &atomic.Bool{}
	sentinel.Store(true)
	var failure atomic.Pointer[error]

	var tasks []func() error
	var numBatches int

	switch {
	case n >= b*core.ThresholdFactorEqualParts*p:
		numBatches = ceilDiv(n, b)
		tasks = buildBatchedTasks(ctx, calc, n, b, p, sentinel, &failure, progress)
	case n < tPar:
		numBatches, tasks = buildEqualPartsTasks(ctx, calc, n, 1, sentinel, &failure)
		progress(math.NaN())
	default:
		parts := p
		if divided := n / tPar; divided < parts {
			parts = divided
		}
		if parts < 1 {
			parts = 1
		}
		numBatches, tasks = buildEqualPartsTasks(ctx, calc, n, parts, sentinel, &failure)
		progress(math.NaN())
	}

	if err := calc.Init(numBatches); err != nil {
		return zero, err
	}

	if err := ctx.Run(tasks); err != nil {
		if stored := failure.Load(); stored != nil {
			return zero, *stored
		}
		return zero, err
	}
	if stored := failure.Load(); stored != nil {
		return zero, *stored
	}

	result := calc.Result()
	progress(1.0)
	return result, nil
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// roundUpToMultiple rounds v up to the next multiple of m.
func roundUpToMultiple(v, m int) int {
	if v <= 0 {
		return v
	}
	rem := v % m
	if rem == 0 {
		return v
	}
	return v + (m - rem)
}

// claimFailure atomically records the first failure. Only the goroutine
// that successfully flips the sentinel from true to false returns a
// non-nil error; every later caller (whether it hit the same or a
// different failure) gets nil back, so the task-group surfaces exactly
// one exception.
func claimFailure(sentinel *atomic.Bool, failure *atomic.Pointer[error], err error) error {
	if err == nil {
		return nil
	}
	if sentinel.CompareAndSwap(true, false) {
		failure.Store(&err)
		return err
	}
	return nil
}

// runDoPart invokes calc.DoPart, converting any panic from the operator,
// reducer, or combiner into an error (the "UserRuntime" kind).
func runDoPart[T any](calc core.Calculator[T], from, to, batchIndex int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicToError(r)
		}
	}()
	return calc.DoPart(from, to, batchIndex)
}

func panicToError(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return &core.PanicError{Value: r}
}

func checkActive(ctx core.Context, sentinel *atomic.Bool) error {
	if !sentinel.Load() {
		return core.ErrAborted
	}
	if !ctx.IsActive() {
		return core.ErrAborted
	}
	return nil
}

// buildBatchedTasks implements BATCHED mode: exactly P
// workers, each starting on its own pre-assigned [i*B, min((i+1)*B,N))
// window, then repeatedly claiming the next window via a shared atomic
// position that starts at P*B. Preserves the source's documented quirk:
// the position is pre-reserved up to P*B even when N < P*B, so workers
// whose starting window is already past N simply loop out immediately.
func buildBatchedTasks[T any](ctx core.Context, calc core.Calculator[T], n, b, p int, sentinel *atomic.Bool, failure *atomic.Pointer[error], progress core.ProgressFunc) []func() error {
	var position atomic.Int64
	position.Store(int64(p) * int64(b))

	tasks := make([]func() error, p)
	for w := 0; w < p; w++ {
		workerIndex := w
		tasks[workerIndex] = func() error {
			start := workerIndex * b
			end := min(start+b, n)
			for start < end {
				if err := checkActive(ctx, sentinel); err != nil {
					return claimFailure(sentinel, failure, err)
				}
				batchIndex := start / b
				if err := runDoPart[T](calc, start, end, batchIndex); err != nil {
					return claimFailure(sentinel, failure, err)
				}
				if err := checkActive(ctx, sentinel); err != nil {
					return claimFailure(sentinel, failure, err)
				}
				progress(float64(end-1) / float64(n))

				next := position.Add(int64(b))
				start = int(next) - b
				end = min(start+b, n)
			}
			return nil
		}
	}
	return tasks
}

// buildEqualPartsTasks implements EQUAL_PARTS mode: the
// target batch size is rounded up to the next multiple of BatchDivisor
// (unless N==0), n is recomputed from that rounded size, and one task per
// resulting window is dispatched. N==0 dispatches a single empty task.
func buildEqualPartsTasks[T any](ctx core.Context, calc core.Calculator[T], n, parts int, sentinel *atomic.Bool, failure *atomic.Pointer[error]) (int, []func() error) {
	if n == 0 {
		return 1, []func() error{
			func() error {
				if err := checkActive(ctx, sentinel); err != nil {
					return claimFailure(sentinel, failure, err)
				}
				if err := runDoPart[T](calc, 0, 0, 0); err != nil {
					return claimFailure(sentinel, failure, err)
				}
				if err := checkActive(ctx, sentinel); err != nil {
					return claimFailure(sentinel, failure, err)
				}
				return nil
			},
		}
	}

	if parts < 1 {
		parts = 1
	}
	targetBatchSize := roundUpToMultiple(ceilDiv(n, parts), core.BatchDivisor)
	if targetBatchSize < 1 {
		targetBatchSize = core.BatchDivisor
	}
	numBatches := ceilDiv(n, targetBatchSize)

	tasks := make([]func() error, numBatches)
	for i := 0; i < numBatches; i++ {
		from := i * targetBatchSize
		to := min(from+targetBatchSize, n)
		batchIndex := i
		tasks[i] = func() error {
			if err := checkActive(ctx, sentinel); err != nil {
				return claimFailure(sentinel, failure, err)
			}
			if err := runDoPart[T](calc, from, to, batchIndex); err != nil {
				return claimFailure(sentinel, failure, err)
			}
			if err := checkActive(ctx, sentinel); err != nil {
				return claimFailure(sentinel, failure, err)
			}
			return nil
		}
	}
	return numBatches, tasks
}
