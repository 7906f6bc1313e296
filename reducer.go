package colx

import (
	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/apply"
	"github.com/gocolx/colx/core/contrib/exec"
	"github.com/gocolx/colx/core/contrib/reduce"
)

// NumericReducer reduces a single core.NumericColumn to a scalar or
// container, via either of two shapes: identity + associative
// binary op (ReduceNumericIdentity) or mutable reduction over a supplier +
// reducer + combiner (ReduceNumericMutable). Both are free functions, not
// methods, because their result type is a type parameter beyond the
// receiver's (see ApplyNumericToObject for why Go forces this shape).
type NumericReducer struct {
	ctx      core.Context
	column   core.NumericColumn
	workload core.Workload
	progress core.ProgressFunc
}

func NewNumericReducer(ctx core.Context, column core.NumericColumn) *NumericReducer {
	return &NumericReducer{ctx: ctx, column: column, workload: core.Default}
}

func (r *NumericReducer) Workload(w core.Workload) *NumericReducer {
	r.workload = w
	return r
}

func (r *NumericReducer) Callback(cb core.ProgressFunc) *NumericReducer {
	r.progress = cb
	return r
}

func (r *NumericReducer) validate(op, combine any) error {
	if err := requireNonNil(r.ctx, "ctx"); err != nil {
		return err
	}
	if err := requireNonNil(r.column, "column"); err != nil {
		return err
	}
	if err := requireNonNil(op, "op"); err != nil {
		return err
	}
	return requireNonNil(combine, "combine")
}

// ReduceNumericIdentity folds the column into T with op, starting from
// identity at each batch and merging batch results left-to-right with
// combine. identity must satisfy op(identity, x) == x for every x.
func ReduceNumericIdentity[T any](r *NumericReducer, identity T, op func(acc T, v float64) T, combine func(a, b T) T) (T, error) {
	var zero T
	if err := r.validate(op, combine); err != nil {
		return zero, err
	}
	calc := &reduce.IdentityOp[float64, T]{
		Size: r.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[float64] {
			return r.column.NumericReader(upTo)
		},
		Identity: identity,
		Op:       op,
		Combine:  combine,
	}
	return exec.Execute[T](r.ctx, calc, r.workload, r.progress)
}

// ReduceNumericMutable reduces the column into an accumulator of type A:
// supplier produces one accumulator per batch (must never return nil),
// reduceFn folds each element in, and combine merges batch accumulators
// through a combine.Tree.
func ReduceNumericMutable[A any](r *NumericReducer, supplier func() A, reduceFn func(acc A, v float64) A, combine func(a, b A) A) (A, error) {
	var zero A
	if err := r.validate(reduceFn, combine); err != nil {
		return zero, err
	}
	if err := requireNonNil(supplier, "supplier"); err != nil {
		return zero, err
	}
	calc := &reduce.Mutable[float64, A]{
		Size: r.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[float64] {
			return r.column.NumericReader(upTo)
		},
		Supplier: supplier,
		Reduce:   reduceFn,
		Combine:  combine,
	}
	return exec.Execute[A](r.ctx, calc, r.workload, r.progress)
}

// CategoricalReducer is the categorical-source counterpart of
// NumericReducer.
type CategoricalReducer struct {
	ctx      core.Context
	column   core.CategoricalColumn
	workload core.Workload
	progress core.ProgressFunc
}

func NewCategoricalReducer(ctx core.Context, column core.CategoricalColumn) *CategoricalReducer {
	return &CategoricalReducer{ctx: ctx, column: column, workload: core.Default}
}

func (r *CategoricalReducer) Workload(w core.Workload) *CategoricalReducer {
	r.workload = w
	return r
}

func (r *CategoricalReducer) Callback(cb core.ProgressFunc) *CategoricalReducer {
	r.progress = cb
	return r
}

func (r *CategoricalReducer) validate(op, combine any) error {
	if err := requireNonNil(r.ctx, "ctx"); err != nil {
		return err
	}
	if err := requireNonNil(r.column, "column"); err != nil {
		return err
	}
	if err := requireNonNil(op, "op"); err != nil {
		return err
	}
	return requireNonNil(combine, "combine")
}

// ReduceCategoricalIdentity is CategoricalReducer's identity+op shape.
func ReduceCategoricalIdentity[T any](r *CategoricalReducer, identity T, op func(acc T, v uint32) T, combine func(a, b T) T) (T, error) {
	var zero T
	if err := r.validate(op, combine); err != nil {
		return zero, err
	}
	calc := &reduce.IdentityOp[uint32, T]{
		Size: r.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[uint32] {
			return r.column.CategoricalReader(upTo)
		},
		Identity: identity,
		Op:       op,
		Combine:  combine,
	}
	return exec.Execute[T](r.ctx, calc, r.workload, r.progress)
}

// ObjectReducer is the object-source (ObjectColumn[IN]) counterpart,
// implementing the mutable-reduction shape representatively.
type ObjectReducer[IN any] struct {
	ctx      core.Context
	column   core.ObjectColumn[IN]
	workload core.Workload
	progress core.ProgressFunc
}

func NewObjectReducer[IN any](ctx core.Context, column core.ObjectColumn[IN]) *ObjectReducer[IN] {
	return &ObjectReducer[IN]{ctx: ctx, column: column, workload: core.Default}
}

func (r *ObjectReducer[IN]) Workload(w core.Workload) *ObjectReducer[IN] {
	r.workload = w
	return r
}

func (r *ObjectReducer[IN]) Callback(cb core.ProgressFunc) *ObjectReducer[IN] {
	r.progress = cb
	return r
}

func (r *ObjectReducer[IN]) validate(supplier, reduceFn, combine any) error {
	if err := requireNonNil(r.ctx, "ctx"); err != nil {
		return err
	}
	if err := requireNonNil(r.column, "column"); err != nil {
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

// ReduceObjectMutable reduces an object column into an accumulator A.
func ReduceObjectMutable[IN, A any](r *ObjectReducer[IN], supplier func() A, reduceFn func(acc A, v IN) A, combine func(a, b A) A) (A, error) {
	var zero A
	if err := r.validate(supplier, reduceFn, combine); err != nil {
		return zero, err
	}
	calc := &reduce.Mutable[IN, A]{
		Size: r.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[IN] {
			return r.column.ObjectReader(upTo)
		},
		Supplier: supplier,
		Reduce:   reduceFn,
		Combine:  combine,
	}
	return exec.Execute[A](r.ctx, calc, r.workload, r.progress)
}

// MixedReducer is the mixed-source (MixedColumn) counterpart, implementing
// the mutable-reduction shape representatively.
type MixedReducer struct {
	ctx      core.Context
	column   core.MixedColumn
	workload core.Workload
	progress core.ProgressFunc
}

func NewMixedReducer(ctx core.Context, column core.MixedColumn) *MixedReducer {
	return &MixedReducer{ctx: ctx, column: column, workload: core.Default}
}

func (r *MixedReducer) Workload(w core.Workload) *MixedReducer {
	r.workload = w
	return r
}

func (r *MixedReducer) Callback(cb core.ProgressFunc) *MixedReducer {
	r.progress = cb
	return r
}

func (r *MixedReducer) validate(supplier, reduceFn, combine any) error {
	if err := requireNonNil(r.ctx, "ctx"); err != nil {
		return err
	}
	if err := requireNonNil(r.column, "column"); err != nil {
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

// ReduceMixedMutable reduces a mixed column into an accumulator A.
func ReduceMixedMutable[A any](r *MixedReducer, supplier func() A, reduceFn func(acc A, v core.Cell) A, combine func(a, b A) A) (A, error) {
	var zero A
	if err := r.validate(supplier, reduceFn, combine); err != nil {
		return zero, err
	}
	calc := &reduce.Mutable[core.Cell, A]{
		Size: r.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[core.Cell] {
			return r.column.MixedReader(upTo)
		},
		Supplier: supplier,
		Reduce:   reduceFn,
		Combine:  combine,
	}
	return exec.Execute[A](r.ctx, calc, r.workload, r.progress)
}
