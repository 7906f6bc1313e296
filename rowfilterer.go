package colx

import (
	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/exec"
	"github.com/gocolx/colx/core/contrib/filter"
)

// RowFilterer evaluates a predicate over a core.RowSource and returns the
// sorted indices of accepted rows, the multi-column counterpart of
// Filterer.
type RowFilterer struct {
	ctx      core.Context
	source   core.RowSource
	workload core.Workload
	progress core.ProgressFunc
}

func NewRowFilterer(ctx core.Context, source core.RowSource) *RowFilterer {
	return &RowFilterer{ctx: ctx, source: source, workload: core.Default}
}

func (f *RowFilterer) Workload(w core.Workload) *RowFilterer {
	f.workload = w
	return f
}

func (f *RowFilterer) Callback(cb core.ProgressFunc) *RowFilterer {
	f.progress = cb
	return f
}

// Filter evaluates predicate over every row, returning the ascending
// indices for which it returned true.
func (f *RowFilterer) Filter(predicate func(core.Row) bool) ([]int, error) {
	if err := requireNonNil(f.ctx, "ctx"); err != nil {
		return nil, err
	}
	if err := requireNonNil(f.source, "source"); err != nil {
		return nil, err
	}
	if err := requireColumns(f.source); err != nil {
		return nil, err
	}
	if err := requireNonNil(predicate, "predicate"); err != nil {
		return nil, err
	}
	calc := &filter.RowsCalculator{
		Size:      f.source.Size(),
		NewReader: f.source.RowReader,
		Predicate: predicate,
	}
	return exec.Execute[[]int](f.ctx, calc, f.workload, f.progress)
}
