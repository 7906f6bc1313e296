// Copyright 2025 The colx Authors. SPDX-License-Identifier: Apache-2.0

// Package exec provides the default core.Context: a persistent worker pool
// (adapted from go-highway's hwy/contrib/workerpool.Pool) plus the
// strategy-selecting Executor.
package exec

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gocolx/colx/core"
)

// Pool is a persistent, reusable worker pool. Workers are spawned once at
// creation and reused across every Run call, eliminating per-execute
// goroutine-spawn overhead, generalised here from index-range ParallelFor to
// arbitrary error-returning task closures so it can serve as a
// core.Context.Run implementation.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
	active     atomic.Bool
}

type workItem struct {
	fn func()
}

// New creates a pool with the given number of persistent workers. If
// numWorkers <= 0, runtime.GOMAXPROCS(0) is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	p.active.Store(true)
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Safe to call multiple times.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// IsActive reports whether Cancel has not been called. Part of core.Context.
func (p *Pool) IsActive() bool {
	return p.active.Load()
}

// RequireActive returns core.ErrAborted if IsActive() is false, nil
// otherwise. Part of core.Context.
func (p *Pool) RequireActive() error {
	if !p.active.Load() {
		return core.ErrAborted
	}
	return nil
}

// Cancel flips the pool inactive; in-flight Run calls observe this at their
// next batch boundary via core.Context.IsActive. Cancel does not stop
// already-running goroutines by itself — colx's own cooperative checks do.
func (p *Pool) Cancel() {
	p.active.Store(false)
}

// Parallelism reports the worker count. Part of core.Context.
func (p *Pool) Parallelism() int {
	return p.numWorkers
}

// Run executes every task, bounded to NumWorkers concurrent goroutines,
// blocking until all tasks finish or the first error has propagated. This
// is the core.Context.Run contract: on error, the remaining tasks are
// still allowed to run to completion (they cooperatively check
// IsActive themselves), but only the first error is returned.
//
// If the pool has been closed, tasks run sequentially on the caller's
// goroutine as a fallback.
func (p *Pool) Run(tasks []func() error) error {
	if len(tasks) == 0 {
		return nil
	}
	if p.closed.Load() {
		for _, t := range tasks {
			if err := t(); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(max(1, p.numWorkers))

	for _, task := range tasks {
		task := task
		g.Go(func() error {
			done := make(chan error, 1)
			p.workC <- workItem{fn: func() {
				done <- task()
			}}
			return <-done
		})
	}
	return g.Wait()
}
