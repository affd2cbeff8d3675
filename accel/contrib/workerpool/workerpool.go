// Copyright 2025 go-accel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs independent per-channel work on a fixed set of
// goroutines that live as long as the pool.
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	err := vdsp.DownsampleChannels(pool, channels, 4, filter, results)
//
// A nil *Pool is valid and runs everything on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of worker goroutines.
type Pool struct {
	numWorkers int
	workC      chan task

	// mu is held for reading while work is queued and for writing by
	// Close, so workC is never sent on after it is closed.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS. Close must be called to stop the workers.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close stops the workers after queued work completes. It is safe to call
// more than once, and concurrently with ParallelFor or ParallelForAtomic:
// calls that already queued their work finish on the workers, later calls
// run on the calling goroutine.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// dispatch queues fn(0) .. fn(tasks-1) on the workers and waits for them.
// It returns false without running anything when the pool is nil, closed or
// has a single worker.
func (p *Pool) dispatch(tasks int, fn func(k int)) bool {
	if p == nil || p.numWorkers == 1 {
		return false
	}
	var wg sync.WaitGroup
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	wg.Add(tasks)
	for k := range tasks {
		p.workC <- task{fn: func() { fn(k) }, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
	return true
}

// ParallelFor calls fn over contiguous ranges covering [0, n) and blocks
// until all ranges are done. fn must not call back into the same pool.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.NumWorkers(), n)
	chunk := (n + workers - 1) / workers
	tasks := (n + chunk - 1) / chunk
	ok := p.dispatch(tasks, func(k int) {
		start := k * chunk
		fn(start, min(start+chunk, n))
	})
	if !ok {
		fn(0, n)
	}
}

// ParallelForAtomic calls fn(i) once for every i in [0, n), handing indices
// to whichever worker is free. It blocks until every call returns. Use it
// when the cost per index varies, such as channels of different lengths.
// fn must not call back into the same pool.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	var next atomic.Int64
	ok := p.dispatch(min(p.NumWorkers(), n), func(int) {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(i)
		}
	})
	if !ok {
		for i := range n {
			fn(i)
		}
	}
}
