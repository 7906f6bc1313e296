package colx

import (
	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/apply"
	"github.com/gocolx/colx/core/contrib/exec"
	"github.com/gocolx/colx/core/contrib/filter"
)

// Filterer evaluates a predicate over a single column and returns the
// sorted indices of accepted rows. One generic
// Filterer[IN] serves every source read mode: NewNumericFilterer,
// NewCategoricalFilterer, NewObjectFilterer, and NewMixedFilterer all
// construct the same type with a different reader plugged in.
type Filterer[IN any] struct {
	ctx       core.Context
	size      int
	newReader func(upTo int) apply.ElementReader[IN]
	workload  core.Workload
	progress  core.ProgressFunc
}

func (f *Filterer[IN]) Workload(w core.Workload) *Filterer[IN] {
	f.workload = w
	return f
}

func (f *Filterer[IN]) Callback(cb core.ProgressFunc) *Filterer[IN] {
	f.progress = cb
	return f
}

// Filter evaluates predicate over every element, returning the ascending
// indices for which it returned true.
func (f *Filterer[IN]) Filter(predicate func(IN) bool) ([]int, error) {
	if err := requireNonNil(f.ctx, "ctx"); err != nil {
		return nil, err
	}
	if err := requireNonNil(predicate, "predicate"); err != nil {
		return nil, err
	}
	calc := &filter.Calculator[IN]{
		Size:      f.size,
		NewReader: f.newReader,
		Predicate: predicate,
	}
	return exec.Execute[[]int](f.ctx, calc, f.workload, f.progress)
}

func NewNumericFilterer(ctx core.Context, column core.NumericColumn) *Filterer[float64] {
	return &Filterer[float64]{
		ctx:  ctx,
		size: columnSizeOrZero(column),
		newReader: func(upTo int) apply.ElementReader[float64] {
			return column.NumericReader(upTo)
		},
		workload: core.Default,
	}
}

func NewCategoricalFilterer(ctx core.Context, column core.CategoricalColumn) *Filterer[uint32] {
	return &Filterer[uint32]{
		ctx:  ctx,
		size: columnSizeOrZero(column),
		newReader: func(upTo int) apply.ElementReader[uint32] {
			return column.CategoricalReader(upTo)
		},
		workload: core.Default,
	}
}

func NewObjectFilterer[IN any](ctx core.Context, column core.ObjectColumn[IN]) *Filterer[IN] {
	return &Filterer[IN]{
		ctx:  ctx,
		size: columnSizeOrZero(column),
		newReader: func(upTo int) apply.ElementReader[IN] {
			return column.ObjectReader(upTo)
		},
		workload: core.Default,
	}
}

func NewMixedFilterer(ctx core.Context, column core.MixedColumn) *Filterer[core.Cell] {
	return &Filterer[core.Cell]{
		ctx:  ctx,
		size: columnSizeOrZero(column),
		newReader: func(upTo int) apply.ElementReader[core.Cell] {
			return column.MixedReader(upTo)
		},
		workload: core.Default,
	}
}

// columnSizeOrZero tolerates a nil column at construction time by giving it
// size 0. Filter checks only ctx and predicate: with a nil column it runs a
// single empty batch and returns an empty index slice and a nil error; the
// column is not rejected with ErrNullArgument.
func columnSizeOrZero(column core.Column) int {
	if column == nil {
		return 0
	}
	return column.Size()
}
