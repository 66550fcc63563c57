// Package worker provides a worker pool for processing many games
// concurrently. Each game gets its own tree engine, so the single-writer
// constraint of the engine is never violated: concurrency exists only
// between games, never within one.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/hadron43/pgn-manager/internal/pgn"
)

// Item is one game queued for processing.
type Item struct {
	Game  *pgn.Game
	Index int // Original index for tracking
}

// Result is the outcome of processing one game.
type Result struct {
	Index        int
	Game         *pgn.Game
	PlyCount     int
	InvalidMoves int
	Rendered     string
	Payload      interface{} // Opaque payload; typed by the consumer
	Err          error
}

// ProcessFunc processes one queued item.
type ProcessFunc func(item Item) Result

// Pool fans items out over a fixed set of worker goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	work       chan Item
	results    chan Result
	process    ProcessFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Defaults: 1 worker, buffer of 16.
func NewPool(process ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 16,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan Item, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			continue // Drain without processing
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item; blocks when the buffer is full.
func (p *Pool) Submit(item Item) {
	p.work <- item
}

// Stop makes workers drain remaining items without processing them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close closes the work channel, waits for the workers, then closes the
// result channel.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel processed results arrive on.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
