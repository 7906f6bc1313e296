package colx

import (
	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/exec"
	"github.com/gocolx/colx/core/contrib/reduce"
)

// RowReducer reduces a core.RowSource (any number of columns sharing a
// common size) into a scalar or container, mirroring RowTransformer's
// single-type collapse of the multi-column reducer family: a
// NumericColumnsReducer, CategoricalColumnsReducer, ObjectColumnsReducer, and
// MixedColumnsReducer all become one RowReducer operating over core.Row.
type RowReducer struct {
	ctx      core.Context
	source   core.RowSource
	workload core.Workload
	progress core.ProgressFunc
}

func NewRowReducer(ctx core.Context, source core.RowSource) *RowReducer {
	return &RowReducer{ctx: ctx, source: source, workload: core.Default}
}

func (r *RowReducer) Workload(w core.Workload) *RowReducer {
	r.workload = w
	return r
}

func (r *RowReducer) Callback(cb core.ProgressFunc) *RowReducer {
	r.progress = cb
	return r
}

func (r *RowReducer) validate(supplier, reduceFn, combine any) error {
	if err := requireNonNil(r.ctx, "ctx"); err != nil {
		return err
	}
	if err := requireNonNil(r.source, "source"); err != nil {
		return err
	}
	if err := requireColumns(r.source); err != nil {
		return err
	}
	if err := requireNonNil(supplier, "supplier"); err != nil {
		return err
	}
	if err := requireNonNil(reduceFn, "reduce"); err != nil {
		return err
	}
	return requireNonNil(combine, "combine")
}

// ReduceRowsMutable reduces every row into an accumulator A via supplier +
// reduceFn + combine, mirroring ReduceNumericMutable but row-wise.
func ReduceRowsMutable[A any](r *RowReducer, supplier func() A, reduceFn func(acc A, row core.Row) A, combine func(a, b A) A) (A, error) {
	var zero A
	if err := r.validate(supplier, reduceFn, combine); err != nil {
		return zero, err
	}
	calc := &reduce.RowsMutable[A]{
		Size:      r.source.Size(),
		NewReader: r.source.RowReader,
		Supplier:  supplier,
		Reduce:    reduceFn,
		Combine:   combine,
	}
	return exec.Execute[A](r.ctx, calc, r.workload, r.progress)
}

// ReduceRowsIdentity is RowReducer's identity+op shape.
func ReduceRowsIdentity[T any](r *RowReducer, identity T, op func(acc T, row core.Row) T, combine func(a, b T) T) (T, error) {
	var zero T
	if err := requireNonNil(r.ctx, "ctx"); err != nil {
		return zero, err
	}
	if err := requireNonNil(r.source, "source"); err != nil {
		return zero, err
	}
	if err := requireColumns(r.source); err != nil {
		return zero, err
	}
	if err := requireNonNil(op, "op"); err != nil {
		return zero, err
	}
	if err := requireNonNil(combine, "combine"); err != nil {
		return zero, err
	}
	calc := &reduce.RowsIdentityOp[T]{
		Size:      r.source.Size(),
		NewReader: r.source.RowReader,
		Identity:  identity,
		Op:        op,
		Combine:   combine,
	}
	return exec.Execute[T](r.ctx, calc, r.workload, r.progress)
}
