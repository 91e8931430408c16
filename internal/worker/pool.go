// Package worker probes chess positions in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Job is one position to probe.
type Job struct {
	Index int // Position in the input, used to restore order
	FEN   string
}

// Result is what a probe found out about a position.
type Result struct {
	Index      int
	FEN        string
	ToMove     chess.Colour
	Checked    bool   // The side to move is in check
	Threat     string // Why the king is attacked, when Checked
	Checkmate  bool
	Stalemate  bool
	LegalMoves []chess.Move
	Hash       uint64 // Zobrist hash of placement and side to move
	Err        error
}

// ProbeFunc turns a job into a result.
type ProbeFunc func(job Job) Result

// Pool runs a ProbeFunc on a fixed number of goroutines.
type Pool struct {
	workers   int
	queueSize int
	jobs      chan Job
	results   chan Result
	probe     ProbeFunc
	wg        sync.WaitGroup
	stopped   atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithQueueSize sets the buffer size of the job and result channels.
// Values below 1 are ignored.
func WithQueueSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.queueSize = size
		}
	}
}

// NewPool creates a pool that runs probe. The default is one worker and a
// queue of 10.
func NewPool(probe ProbeFunc, opts ...Option) *Pool {
	p := &Pool{
		workers:   1,
		queueSize: 10,
		probe:     probe,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.queueSize)
	p.results = make(chan Result, p.queueSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if p.Stopped() {
			continue // Drain
		}
		p.results <- p.probe(job)
	}
}

// Submit queues a job. It blocks while the queue is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit queues a job without blocking. It returns false if the queue is
// full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.Stopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes the workers discard queued jobs instead of probing them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close stops accepting jobs, waits for the workers and closes Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}
