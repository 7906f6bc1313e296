// Copyright 2025 The colx Authors. SPDX-License-Identifier: Apache-2.0

// Package apply implements the appliers: element-/row-wise maps
// from one or more source columns into a freshly allocated typed buffer.
// Rather than one class per (arity × read-mode × target-kind) combination,
// this package collapses the family to two generics: Single for
// single-source element-wise maps and Rows for multi-source row-wise maps.
package apply

import "github.com/gocolx/colx/core"

// ElementReader is satisfied by core.NumericReader, core.CategoricalReader,
// core.ObjectReader[T], and core.MixedReader alike (all share the
// SetPosition/Read shape); Single is instantiated once per concrete reader
// type by the façade.
type ElementReader[IN any] interface {
	SetPosition(p int)
	Read() IN
}

// Single is a single-source, element-wise applier: for every index i in a
// batch's [from, to), it positions a fresh reader at from-1, reads forward
// one element per index, applies Op, and writes the result into Target.
//
// A fresh reader is created per batch (readers are not safe to share
// across goroutines); NewReader is called once per DoPart.
type Single[IN, OUT any] struct {
	Size      int
	NewReader func(upTo int) ElementReader[IN]
	Op        func(IN) OUT
	NewTarget func(size int) core.Buffer[OUT]

	target core.Buffer[OUT]
}

// Init allocates the target buffer. numberOfBatches is unused by Single;
// appliers don't need a combine tree or per-batch part-result slot.
func (c *Single[IN, OUT]) Init(numberOfBatches int) error {
	c.target = c.NewTarget(c.Size)
	return nil
}

// NumOps returns the element count, i.e. the source column's size.
func (c *Single[IN, OUT]) NumOps() int {
	return c.Size
}

// DoPart applies Op to every index in [from, to) and writes into Target.
func (c *Single[IN, OUT]) DoPart(from, to, batchIndex int) error {
	if from >= to {
		return nil
	}
	r := c.NewReader(to)
	r.SetPosition(from - 1)
	for i := from; i < to; i++ {
		v := r.Read()
		c.target.Set(i, c.Op(v))
	}
	return nil
}

// Result returns the fully populated target buffer.
func (c *Single[IN, OUT]) Result() core.Buffer[OUT] {
	return c.target
}
