// Copyright 2025 The colx Authors. SPDX-License-Identifier: Apache-2.0

// Package filter implements predicate evaluation into a
// bitset, then compaction into a sorted array of accepted row indices.
package filter

import (
	"sync/atomic"

	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/apply"
)

// Calculator evaluates Predicate over every index of a single column. Each
// batch writes its own disjoint slice of the mask (safe without
// synchronization) and then adds its local accepted count to the shared
// atomic Found counter.
type Calculator[IN any] struct {
	Size      int
	NewReader func(upTo int) apply.ElementReader[IN]
	Predicate func(IN) bool

	mask  []bool
	found atomic.Int64
}

func (c *Calculator[IN]) Init(numberOfBatches int) error {
	c.mask = make([]bool, c.Size)
	return nil
}

func (c *Calculator[IN]) NumOps() int {
	return c.Size
}

func (c *Calculator[IN]) DoPart(from, to, batchIndex int) error {
	if from >= to {
		return nil
	}
	r := c.NewReader(to)
	r.SetPosition(from - 1)
	local := int64(0)
	for i := from; i < to; i++ {
		if c.Predicate(r.Read()) {
			c.mask[i] = true
			local++
		}
	}
	c.found.Add(local)
	return nil
}

// Result compacts the mask into a strictly ascending slice of accepted
// indices. The output is sorted ascending by construction: the mask is
// walked in index order.
func (c *Calculator[IN]) Result() []int {
	return compact(c.mask, int(c.found.Load()))
}

// RowsCalculator is the row-wise (multi-column) counterpart of Calculator.
type RowsCalculator struct {
	Size      int
	NewReader func(upTo int) core.RowReader
	Predicate func(core.Row) bool

	mask  []bool
	found atomic.Int64
}

func (c *RowsCalculator) Init(numberOfBatches int) error {
	c.mask = make([]bool, c.Size)
	return nil
}

func (c *RowsCalculator) NumOps() int {
	return c.Size
}

func (c *RowsCalculator) DoPart(from, to, batchIndex int) error {
	if from >= to {
		return nil
	}
	r := c.NewReader(to)
	r.SetPosition(from - 1)
	local := int64(0)
	for i := from; i < to; i++ {
		if c.Predicate(r.Move()) {
			c.mask[i] = true
			local++
		}
	}
	c.found.Add(local)
	return nil
}

func (c *RowsCalculator) Result() []int {
	return compact(c.mask, int(c.found.Load()))
}

func compact(mask []bool, found int) []int {
	out := make([]int, 0, found)
	for i, ok := range mask {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
