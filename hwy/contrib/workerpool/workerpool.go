// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for running
// block kernels over long slices. Workers are spawned once and reused, so
// splitting a slice into chunks of composite vectors costs a channel send per
// chunk rather than a goroutine.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(numBlocks, func(chunk, start, end int) {
//	    for b := start; b < end; b++ {
//	        processBlock(b)
//	    }
//	})
//
// A nil *Pool is valid and runs everything on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one chunk of a ParallelFor call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool, or 1 for a nil or
// closed pool.
func (p *Pool) NumWorkers() int {
	if p == nil || p.closed.Load() {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// chunkSize returns the number of items per chunk for n items.
func (p *Pool) chunkSize(n int) int {
	workers := min(p.NumWorkers(), n)
	return (n + workers - 1) / workers
}

// Chunks returns how many chunks ParallelFor splits n items into. Callers
// use it to size per-chunk result slots.
func (p *Pool) Chunks(n int) int {
	if n <= 0 {
		return 0
	}
	size := p.chunkSize(n)
	return (n + size - 1) / size
}

// ParallelFor splits [0, n) into Chunks(n) contiguous ranges and calls
// fn(chunk, start, end) for each, blocking until all complete. Chunk
// indices are dense in [0, Chunks(n)).
func (p *Pool) ParallelFor(n int, fn func(chunk, start, end int)) {
	if n <= 0 {
		return
	}

	chunks := p.Chunks(n)
	if chunks == 1 {
		fn(0, 0, n)
		return
	}
	size := p.chunkSize(n)

	var wg sync.WaitGroup
	wg.Add(chunks)
	for c := range chunks {
		start := c * size
		end := min(start+size, n)
		p.workC <- workItem{
			fn: func() {
				fn(c, start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
