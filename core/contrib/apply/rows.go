package apply

import "github.com/gocolx/colx/core"

// Rows is a multi-source, row-wise applier: for every index i in a batch's
// [from, to), it positions a fresh core.RowReader at from-1, calls Move()
// once per index, applies Op to the resulting core.Row, and writes the
// result into Target. This single generic instantiation serves
// NumericRow/CategoricalRow/ObjectRow[T]/MixedRow alike — they differ only
// in which RowReader constructor the façade plugs in.
type Rows[OUT any] struct {
	Size      int
	NewReader func(upTo int) core.RowReader
	Op        func(core.Row) OUT
	NewTarget func(size int) core.Buffer[OUT]

	target core.Buffer[OUT]
}

func (c *Rows[OUT]) Init(numberOfBatches int) error {
	c.target = c.NewTarget(c.Size)
	return nil
}

func (c *Rows[OUT]) NumOps() int {
	return c.Size
}

func (c *Rows[OUT]) DoPart(from, to, batchIndex int) error {
	if from >= to {
		return nil
	}
	r := c.NewReader(to)
	r.SetPosition(from - 1)
	for i := from; i < to; i++ {
		row := r.Move()
		c.target.Set(i, c.Op(row))
	}
	return nil
}

func (c *Rows[OUT]) Result() core.Buffer[OUT] {
	return c.target
}
