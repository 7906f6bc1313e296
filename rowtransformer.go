package colx

import (
	"github.com/gocolx/colx/coldata"
	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/apply"
	"github.com/gocolx/colx/core/contrib/exec"
)

// RowTransformer applies a per-row function over a core.RowSource — any
// number of columns sharing a common size, produced by
// coldata.New{Numeric,Categorical,Object,Mixed}RowSource — into one
// freshly allocated target buffer. Because core.RowReader already
// abstracts over which column kinds it wraps, one RowTransformer serves
// every source-column-kind combination;
// only the To* target method and the generic escape hatch vary by target
// kind, mirroring core/contrib/apply.Rows's single-generic collapse of the
// per-(arity×mode×kind) applier family.
type RowTransformer struct {
	ctx      core.Context
	source   core.RowSource
	workload core.Workload
	progress core.ProgressFunc
}

func NewRowTransformer(ctx core.Context, source core.RowSource) *RowTransformer {
	return &RowTransformer{ctx: ctx, source: source, workload: core.Default}
}

func (t *RowTransformer) Workload(w core.Workload) *RowTransformer {
	t.workload = w
	return t
}

func (t *RowTransformer) Callback(cb core.ProgressFunc) *RowTransformer {
	t.progress = cb
	return t
}

func (t *RowTransformer) validate(op any) error {
	if err := requireNonNil(t.ctx, "ctx"); err != nil {
		return err
	}
	if err := requireNonNil(t.source, "source"); err != nil {
		return err
	}
	if err := requireColumns(t.source); err != nil {
		return err
	}
	return requireNonNil(op, "op")
}

func execRowApply[OUT any](ctx core.Context, workload core.Workload, progress core.ProgressFunc, calc *apply.Rows[OUT]) error {
	_, err := exec.Execute[core.Buffer[OUT]](ctx, calc, workload, progress)
	return err
}

// ToReal maps every row to a float64, written into a RealBuffer. ToReal and
// ToCategorical are the typed targets; ApplyRowsToObject is the general
// escape hatch.
func (t *RowTransformer) ToReal(op func(core.Row) float64) (*coldata.RealBuffer, error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.RealBuffer
	calc := &apply.Rows[float64]{
		Size:      t.source.Size(),
		NewReader: t.source.RowReader,
		Op:        op,
		NewTarget: func(size int) core.Buffer[float64] {
			target = coldata.NewRealBuffer(size)
			return target
		},
	}
	if err := execRowApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ToCategorical maps every row to a category code, written into a packed
// buffer sized by core.FindMinimalFormat(min(size, maxNumberOfValues)).
func (t *RowTransformer) ToCategorical(op func(core.Row) uint32, maxNumberOfValues int) (core.Buffer[uint32], error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	if err := requireNonNegative(maxNumberOfValues, "maxNumberOfValues"); err != nil {
		return nil, err
	}
	size := t.source.Size()
	format := core.FindMinimalFormat(uint64(min(size, maxNumberOfValues)))
	var target core.Buffer[uint32]
	calc := &apply.Rows[uint32]{
		Size:      size,
		NewReader: t.source.RowReader,
		Op:        op,
		NewTarget: func(size int) core.Buffer[uint32] {
			target = coldata.NewCategoricalBuffer(format, size)
			return target
		},
	}
	if err := execRowApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ApplyRowsToObject is RowTransformer's generic escape hatch (see
// ApplyNumericToObject for why this cannot be a method).
func ApplyRowsToObject[OUT any](t *RowTransformer, op func(core.Row) OUT) (*coldata.ObjectBuffer[OUT], error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.ObjectBuffer[OUT]
	calc := &apply.Rows[OUT]{
		Size:      t.source.Size(),
		NewReader: t.source.RowReader,
		Op:        op,
		NewTarget: func(size int) core.Buffer[OUT] {
			target = coldata.NewObjectBuffer[OUT](size)
			return target
		},
	}
	if err := execRowApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}
