package reduce

import (
	"reflect"

	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/apply"
	"github.com/gocolx/colx/core/contrib/combine"
)

// isNilAccumulator reports whether a supplier-produced accumulator is nil,
// covering both a nil interface and a typed nil pointer/map/slice/chan/func
// boxed in one, so NullSupplier is caught regardless of how A is
// instantiated.
func isNilAccumulator(a any) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Mutable reduces a single column into an accumulator of type A: Supplier
// creates one accumulator per batch (must never return nil), Reduce folds
// each element of the batch into it, and the batch's finished accumulator
// is offered to a combine.Tree keyed by batch index. The tree's own
// Combine function need not be the same operation as Reduce.
type Mutable[IN, A any] struct {
	Size      int
	NewReader func(upTo int) apply.ElementReader[IN]
	Supplier  func() A
	Reduce    func(acc A, v IN) A
	Combine   func(a, b A) A

	tree *combine.Tree[A]
}

func (c *Mutable[IN, A]) Init(numberOfBatches int) error {
	c.tree = combine.New(numberOfBatches, c.Combine)
	return nil
}

func (c *Mutable[IN, A]) NumOps() int {
	return c.Size
}

func (c *Mutable[IN, A]) DoPart(from, to, batchIndex int) error {
	acc := c.Supplier()
	if isNilAccumulator(acc) {
		return core.ErrNullSupplier
	}
	if from < to {
		r := c.NewReader(to)
		r.SetPosition(from - 1)
		for i := from; i < to; i++ {
			acc = c.Reduce(acc, r.Read())
		}
	}
	c.tree.Offer(batchIndex, acc)
	return nil
}

func (c *Mutable[IN, A]) Result() A {
	return c.tree.Root()
}

// RowsMutable is the row-wise (multi-column) counterpart of Mutable.
type RowsMutable[A any] struct {
	Size      int
	NewReader func(upTo int) core.RowReader
	Supplier  func() A
	Reduce    func(acc A, row core.Row) A
	Combine   func(a, b A) A

	tree *combine.Tree[A]
}

func (c *RowsMutable[A]) Init(numberOfBatches int) error {
	c.tree = combine.New(numberOfBatches, c.Combine)
	return nil
}

func (c *RowsMutable[A]) NumOps() int {
	return c.Size
}

func (c *RowsMutable[A]) DoPart(from, to, batchIndex int) error {
	acc := c.Supplier()
	if isNilAccumulator(acc) {
		return core.ErrNullSupplier
	}
	if from < to {
		r := c.NewReader(to)
		r.SetPosition(from - 1)
		for i := from; i < to; i++ {
			acc = c.Reduce(acc, r.Move())
		}
	}
	c.tree.Offer(batchIndex, acc)
	return nil
}

func (c *RowsMutable[A]) Result() A {
	return c.tree.Root()
}
