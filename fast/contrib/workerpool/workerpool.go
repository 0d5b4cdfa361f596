// Copyright 2025 The go-fastfloat Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting
// reductions over Fast values across goroutines.
//
// A Pool is created once and reused across many reductions, so a call does
// not pay for spawning goroutines or allocating channels:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, batch := range batches {
//	    total := reduce.ParallelSum(pool, batch)
//	    ...
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
//
// Close may run concurrently with ParallelFor and ParallelForAtomic: a call
// that has started handing out chunks finishes on the workers, and calls
// that start after Close run on the caller. fn must not call back into the
// same pool.
type Pool struct {
	numWorkers int
	tasks      chan task

	// mu is held for reading while a call sends to tasks and for writing
	// while Close closes it.
	mu     sync.RWMutex
	closed bool
}

// task is one chunk of a parallel call.
type task struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.tasks)
}

// acquire locks the pool for sending and reports whether it is still open.
// On true the caller must call p.mu.RUnlock once its chunks are queued.
func (p *Pool) acquire() bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	return true
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each range. It blocks until every range is done.
// A closed pool runs fn(0, n) on the caller.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || !p.acquire() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		p.tasks <- task{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing indices out
// through an atomic counter so uneven items balance across workers.
// It blocks until every index is done. A closed pool runs sequentially on
// the caller.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || !p.acquire() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
