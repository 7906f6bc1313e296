package colx

import (
	"github.com/gocolx/colx/coldata"
	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/apply"
	"github.com/gocolx/colx/core/contrib/exec"
)

// execApply runs calc through the strategy-selecting executor and discards
// its typed Result() — callers that need the buffer capture it themselves
// via the closure passed as NewTarget, the same pattern coldata's buffers
// use to expose a typed Values()/Decode() beyond the core.Buffer contract.
func execApply[IN, OUT any](ctx core.Context, workload core.Workload, progress core.ProgressFunc, calc *apply.Single[IN, OUT]) error {
	_, err := exec.Execute[core.Buffer[OUT]](ctx, calc, workload, progress)
	return err
}

// NumericTransformer applies a per-element function over a single
// core.NumericColumn into one freshly allocated target buffer. Construct
// with NewNumericTransformer, configure with Workload/Callback, then call
// one of the To* methods naming the target kind (one member of the
// (source-read-mode × target-kind) applier family, numeric source).
type NumericTransformer struct {
	ctx      core.Context
	column   core.NumericColumn
	workload core.Workload
	progress core.ProgressFunc
}

func NewNumericTransformer(ctx core.Context, column core.NumericColumn) *NumericTransformer {
	return &NumericTransformer{ctx: ctx, column: column, workload: core.Default}
}

func (t *NumericTransformer) Workload(w core.Workload) *NumericTransformer {
	t.workload = w
	return t
}

func (t *NumericTransformer) Callback(cb core.ProgressFunc) *NumericTransformer {
	t.progress = cb
	return t
}

func (t *NumericTransformer) validate(op any) error {
	if err := requireNonNil(t.ctx, "ctx"); err != nil {
		return err
	}
	if err := requireNonNil(t.column, "column"); err != nil {
		return err
	}
	return requireNonNil(op, "op")
}

func (t *NumericTransformer) newReader() func(upTo int) apply.ElementReader[float64] {
	return func(upTo int) apply.ElementReader[float64] { return t.column.NumericReader(upTo) }
}

// ToReal maps every element to a float64, written into a RealBuffer.
func (t *NumericTransformer) ToReal(op func(float64) float64) (*coldata.RealBuffer, error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.RealBuffer
	calc := &apply.Single[float64, float64]{
		Size:      t.column.Size(),
		NewReader: t.newReader(),
		Op:        op,
		NewTarget: func(size int) core.Buffer[float64] {
			target = coldata.NewRealBuffer(size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ToInteger53 maps every element to a float64 truncated or rounded (per
// round) into an int64 representable exactly in a float64 mantissa,
// written into an Integer53Buffer.
func (t *NumericTransformer) ToInteger53(op func(float64) float64, round bool) (*coldata.Integer53Buffer, error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.Integer53Buffer
	calc := &apply.Single[float64, float64]{
		Size:      t.column.Size(),
		NewReader: t.newReader(),
		Op:        op,
		NewTarget: func(size int) core.Buffer[float64] {
			target = coldata.NewInteger53Buffer(size, round)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ToCategorical maps every element to a category code, written into a
// packed buffer sized by core.FindMinimalFormat(min(size, maxNumberOfValues)).
func (t *NumericTransformer) ToCategorical(op func(float64) uint32, maxNumberOfValues int) (core.Buffer[uint32], error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	if err := requireNonNegative(maxNumberOfValues, "maxNumberOfValues"); err != nil {
		return nil, err
	}
	size := t.column.Size()
	format := core.FindMinimalFormat(uint64(min(size, maxNumberOfValues)))
	var target core.Buffer[uint32]
	calc := &apply.Single[float64, uint32]{
		Size:      size,
		NewReader: t.newReader(),
		Op:        op,
		NewTarget: func(size int) core.Buffer[uint32] {
			target = coldata.NewCategoricalBuffer(format, size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ToNominal maps every element to a string label, interned into a
// NominalBuffer's dictionary.
func (t *NumericTransformer) ToNominal(op func(float64) string, maxNumberOfValues int) (*coldata.NominalBuffer, error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	if err := requireNonNegative(maxNumberOfValues, "maxNumberOfValues"); err != nil {
		return nil, err
	}
	size := t.column.Size()
	format := core.FindMinimalFormat(uint64(min(size, maxNumberOfValues)))
	var target *coldata.NominalBuffer
	calc := &apply.Single[float64, string]{
		Size:      size,
		NewReader: t.newReader(),
		Op:        op,
		NewTarget: func(size int) core.Buffer[string] {
			target = coldata.NewNominalBuffer(format, size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ToDateTime maps every element to epoch milliseconds, written into a
// DateTimeBuffer.
func (t *NumericTransformer) ToDateTime(op func(float64) int64) (*coldata.DateTimeBuffer, error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.DateTimeBuffer
	calc := &apply.Single[float64, int64]{
		Size:      t.column.Size(),
		NewReader: t.newReader(),
		Op:        op,
		NewTarget: func(size int) core.Buffer[int64] {
			target = coldata.NewDateTimeBuffer(size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ToTime maps every element to nanoseconds since midnight, written into a
// TimeBuffer.
func (t *NumericTransformer) ToTime(op func(float64) int64) (*coldata.TimeBuffer, error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.TimeBuffer
	calc := &apply.Single[float64, int64]{
		Size:      t.column.Size(),
		NewReader: t.newReader(),
		Op:        op,
		NewTarget: func(size int) core.Buffer[int64] {
			target = coldata.NewTimeBuffer(size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ApplyNumericToObject is the generic escape hatch for arbitrary object
// targets: Go methods cannot introduce a new type parameter beyond their
// receiver's, so this is a package-level function rather than a method on
// NumericTransformer.
func ApplyNumericToObject[OUT any](t *NumericTransformer, op func(float64) OUT) (*coldata.ObjectBuffer[OUT], error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.ObjectBuffer[OUT]
	calc := &apply.Single[float64, OUT]{
		Size:      t.column.Size(),
		NewReader: t.newReader(),
		Op:        op,
		NewTarget: func(size int) core.Buffer[OUT] {
			target = coldata.NewObjectBuffer[OUT](size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// CategoricalTransformer is the categorical-source counterpart of
// NumericTransformer: two targets (decode back to a real value, recode to
// a nominal label) plus the generic object escape hatch.
type CategoricalTransformer struct {
	ctx      core.Context
	column   core.CategoricalColumn
	workload core.Workload
	progress core.ProgressFunc
}

func NewCategoricalTransformer(ctx core.Context, column core.CategoricalColumn) *CategoricalTransformer {
	return &CategoricalTransformer{ctx: ctx, column: column, workload: core.Default}
}

func (t *CategoricalTransformer) Workload(w core.Workload) *CategoricalTransformer {
	t.workload = w
	return t
}

func (t *CategoricalTransformer) Callback(cb core.ProgressFunc) *CategoricalTransformer {
	t.progress = cb
	return t
}

func (t *CategoricalTransformer) validate(op any) error {
	if err := requireNonNil(t.ctx, "ctx"); err != nil {
		return err
	}
	if err := requireNonNil(t.column, "column"); err != nil {
		return err
	}
	return requireNonNil(op, "op")
}

// ToReal decodes every category index to a float64, written into a
// RealBuffer.
func (t *CategoricalTransformer) ToReal(op func(uint32) float64) (*coldata.RealBuffer, error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.RealBuffer
	calc := &apply.Single[uint32, float64]{
		Size: t.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[uint32] {
			return t.column.CategoricalReader(upTo)
		},
		Op: op,
		NewTarget: func(size int) core.Buffer[float64] {
			target = coldata.NewRealBuffer(size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ToNominal recodes every category index to a string label, interned into
// a NominalBuffer's dictionary. This is the categorical-source counterpart
// of NumericTransformer.ToNominal.
func (t *CategoricalTransformer) ToNominal(op func(uint32) string, maxNumberOfValues int) (*coldata.NominalBuffer, error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	if err := requireNonNegative(maxNumberOfValues, "maxNumberOfValues"); err != nil {
		return nil, err
	}
	size := t.column.Size()
	format := core.FindMinimalFormat(uint64(min(size, maxNumberOfValues)))
	var target *coldata.NominalBuffer
	calc := &apply.Single[uint32, string]{
		Size: size,
		NewReader: func(upTo int) apply.ElementReader[uint32] {
			return t.column.CategoricalReader(upTo)
		},
		Op: op,
		NewTarget: func(size int) core.Buffer[string] {
			target = coldata.NewNominalBuffer(format, size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ApplyCategoricalToObject is CategoricalTransformer's generic escape
// hatch; see ApplyNumericToObject for why this is a free function.
func ApplyCategoricalToObject[OUT any](t *CategoricalTransformer, op func(uint32) OUT) (*coldata.ObjectBuffer[OUT], error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.ObjectBuffer[OUT]
	calc := &apply.Single[uint32, OUT]{
		Size: t.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[uint32] {
			return t.column.CategoricalReader(upTo)
		},
		Op: op,
		NewTarget: func(size int) core.Buffer[OUT] {
			target = coldata.NewObjectBuffer[OUT](size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ObjectTransformer is the object-source (ObjectColumn[IN]) counterpart:
// every element is read as IN and mapped to a freshly allocated target.
type ObjectTransformer[IN any] struct {
	ctx      core.Context
	column   core.ObjectColumn[IN]
	workload core.Workload
	progress core.ProgressFunc
}

func NewObjectTransformer[IN any](ctx core.Context, column core.ObjectColumn[IN]) *ObjectTransformer[IN] {
	return &ObjectTransformer[IN]{ctx: ctx, column: column, workload: core.Default}
}

func (t *ObjectTransformer[IN]) Workload(w core.Workload) *ObjectTransformer[IN] {
	t.workload = w
	return t
}

func (t *ObjectTransformer[IN]) Callback(cb core.ProgressFunc) *ObjectTransformer[IN] {
	t.progress = cb
	return t
}

func (t *ObjectTransformer[IN]) validate(op any) error {
	if err := requireNonNil(t.ctx, "ctx"); err != nil {
		return err
	}
	if err := requireNonNil(t.column, "column"); err != nil {
		return err
	}
	return requireNonNil(op, "op")
}

// ToReal maps every object element to a float64, written into a
// RealBuffer — the one representative target for an object source that
// the one representative target for an object source; see
// ApplyObjectToObject for the general case.
func (t *ObjectTransformer[IN]) ToReal(op func(IN) float64) (*coldata.RealBuffer, error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.RealBuffer
	calc := &apply.Single[IN, float64]{
		Size: t.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[IN] {
			return t.column.ObjectReader(upTo)
		},
		Op: op,
		NewTarget: func(size int) core.Buffer[float64] {
			target = coldata.NewRealBuffer(size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ApplyObjectToObject is ObjectTransformer's generic escape hatch: both the
// source element type IN and the target element type OUT are free type
// parameters, so this cannot be a method (see ApplyNumericToObject).
func ApplyObjectToObject[IN, OUT any](t *ObjectTransformer[IN], op func(IN) OUT) (*coldata.ObjectBuffer[OUT], error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.ObjectBuffer[OUT]
	calc := &apply.Single[IN, OUT]{
		Size: t.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[IN] {
			return t.column.ObjectReader(upTo)
		},
		Op: op,
		NewTarget: func(size int) core.Buffer[OUT] {
			target = coldata.NewObjectBuffer[OUT](size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// MixedTransformer is the mixed-source (MixedColumn) counterpart: every
// element is read as a core.Cell tagging which underlying reader produced
// it, letting one operator handle heterogeneous columns uniformly.
type MixedTransformer struct {
	ctx      core.Context
	column   core.MixedColumn
	workload core.Workload
	progress core.ProgressFunc
}

func NewMixedTransformer(ctx core.Context, column core.MixedColumn) *MixedTransformer {
	return &MixedTransformer{ctx: ctx, column: column, workload: core.Default}
}

func (t *MixedTransformer) Workload(w core.Workload) *MixedTransformer {
	t.workload = w
	return t
}

func (t *MixedTransformer) Callback(cb core.ProgressFunc) *MixedTransformer {
	t.progress = cb
	return t
}

func (t *MixedTransformer) validate(op any) error {
	if err := requireNonNil(t.ctx, "ctx"); err != nil {
		return err
	}
	if err := requireNonNil(t.column, "column"); err != nil {
		return err
	}
	return requireNonNil(op, "op")
}

// ToReal maps every tagged cell to a float64, written into a RealBuffer.
func (t *MixedTransformer) ToReal(op func(core.Cell) float64) (*coldata.RealBuffer, error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.RealBuffer
	calc := &apply.Single[core.Cell, float64]{
		Size: t.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[core.Cell] {
			return t.column.MixedReader(upTo)
		},
		Op: op,
		NewTarget: func(size int) core.Buffer[float64] {
			target = coldata.NewRealBuffer(size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}

// ApplyMixedToObject is MixedTransformer's generic escape hatch.
func ApplyMixedToObject[OUT any](t *MixedTransformer, op func(core.Cell) OUT) (*coldata.ObjectBuffer[OUT], error) {
	if err := t.validate(op); err != nil {
		return nil, err
	}
	var target *coldata.ObjectBuffer[OUT]
	calc := &apply.Single[core.Cell, OUT]{
		Size: t.column.Size(),
		NewReader: func(upTo int) apply.ElementReader[core.Cell] {
			return t.column.MixedReader(upTo)
		},
		Op: op,
		NewTarget: func(size int) core.Buffer[OUT] {
			target = coldata.NewObjectBuffer[OUT](size)
			return target
		},
	}
	if err := execApply(t.ctx, t.workload, t.progress, calc); err != nil {
		return nil, err
	}
	return target, nil
}
