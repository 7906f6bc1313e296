// Copyright 2025 The colx Authors. SPDX-License-Identifier: Apache-2.0

// Package reduce implements two reducer shapes: identity +
// associative binary op over numeric/categorical values, and mutable
// reduction over a combine.Tree accumulator. Both come in single-column
// and row-wise (multi-column) flavours.
package reduce

import (
	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/apply"
)

// IdentityOp reduces a single column to a scalar T using an identity value
// and an associative binary op, folding values[from,to) per batch into
// partResults[batchIndex], then combining partResults left-to-right with
// Combine (which may differ from Op) starting from Identity.
//
// Identity must satisfy Op(Identity, x) == x for every x the column can
// produce.
type IdentityOp[IN, T any] struct {
	Size      int
	NewReader func(upTo int) apply.ElementReader[IN]
	Identity  T
	Op        func(acc T, v IN) T
	Combine   func(a, b T) T

	partResults []T
}

func (c *IdentityOp[IN, T]) Init(numberOfBatches int) error {
	c.partResults = make([]T, numberOfBatches)
	for i := range c.partResults {
		c.partResults[i] = c.Identity
	}
	return nil
}

func (c *IdentityOp[IN, T]) NumOps() int {
	return c.Size
}

func (c *IdentityOp[IN, T]) DoPart(from, to, batchIndex int) error {
	if from >= to {
		return nil
	}
	r := c.NewReader(to)
	r.SetPosition(from - 1)
	acc := c.Identity
	for i := from; i < to; i++ {
		acc = c.Op(acc, r.Read())
	}
	c.partResults[batchIndex] = acc
	return nil
}

func (c *IdentityOp[IN, T]) Result() T {
	acc := c.Identity
	for _, part := range c.partResults {
		acc = c.Combine(acc, part)
	}
	return acc
}

// RowsIdentityOp is the row-wise (multi-column) counterpart of IdentityOp.
type RowsIdentityOp[T any] struct {
	Size      int
	NewReader func(upTo int) core.RowReader
	Identity  T
	Op        func(acc T, row core.Row) T
	Combine   func(a, b T) T

	partResults []T
}

func (c *RowsIdentityOp[T]) Init(numberOfBatches int) error {
	c.partResults = make([]T, numberOfBatches)
	for i := range c.partResults {
		c.partResults[i] = c.Identity
	}
	return nil
}

func (c *RowsIdentityOp[T]) NumOps() int {
	return c.Size
}

func (c *RowsIdentityOp[T]) DoPart(from, to, batchIndex int) error {
	if from >= to {
		return nil
	}
	r := c.NewReader(to)
	r.SetPosition(from - 1)
	acc := c.Identity
	for i := from; i < to; i++ {
		acc = c.Op(acc, r.Move())
	}
	c.partResults[batchIndex] = acc
	return nil
}

func (c *RowsIdentityOp[T]) Result() T {
	acc := c.Identity
	for _, part := range c.partResults {
		acc = c.Combine(acc, part)
	}
	return acc
}
