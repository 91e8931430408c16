package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// echoProbe returns a probe that does no work.
func echoProbe() ProbeFunc {
	return func(job Job) Result {
		return Result{Index: job.Index, FEN: job.FEN}
	}
}

// countingProbe returns a probe that increments a counter.
func countingProbe(counter *int32) ProbeFunc {
	return func(job Job) Result {
		atomic.AddInt32(counter, 1)
		return Result{Index: job.Index, FEN: job.FEN}
	}
}

// drain reads the result channel until it closes and returns the count.
func drain(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var probed int32
	pool := NewPool(countingProbe(&probed), WithWorkers(4), WithQueueSize(10))
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i, FEN: engine.InitialFEN})
	}

	go pool.Close()

	if got := drain(pool); got != numJobs {
		t.Errorf("results = %d; want %d", got, numJobs)
	}
	if got := atomic.LoadInt32(&probed); got != numJobs {
		t.Errorf("probed = %d; want %d", got, numJobs)
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var probed int32
	slow := func(job Job) Result {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&probed, 1)
		return Result{Index: job.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithQueueSize(100))
	pool.Start()

	const numJobs = 50
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	drain(pool)

	if n := atomic.LoadInt32(&probed); n >= numJobs {
		t.Logf("early stop may not have prevented all probing: %d probed", n)
	}
}

func TestPoolStopped(t *testing.T) {
	pool := NewPool(echoProbe(), WithWorkers(2))
	pool.Start()

	if pool.Stopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.Stopped() {
		t.Error("pool should be stopped after Stop()")
	}
	if pool.TrySubmit(Job{Index: 0}) {
		t.Error("TrySubmit after Stop should return false")
	}

	pool.Close()
}

func TestPoolTrySubmit(t *testing.T) {
	slow := func(job Job) Result {
		time.Sleep(100 * time.Millisecond)
		return Result{Index: job.Index}
	}

	pool := NewPool(slow, WithWorkers(1), WithQueueSize(2))
	pool.Start()

	if !pool.TrySubmit(Job{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(Job{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}
	// Timing dependent; only verify it does not block or panic.
	pool.TrySubmit(Job{Index: 2})

	pool.Stop()
	pool.Close()
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name          string
		opts          []Option
		wantWorkers   int
		wantQueueSize int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []Option{WithWorkers(4)}, 4, 10},
		{"queue size", []Option{WithQueueSize(50)}, 1, 50},
		{"both", []Option{WithWorkers(8), WithQueueSize(100)}, 8, 100},
		{"zero workers ignored", []Option{WithWorkers(0)}, 1, 10},
		{"negative queue ignored", []Option{WithQueueSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echoProbe(), tt.opts...)
			if got := pool.Workers(); got != tt.wantWorkers {
				t.Errorf("Workers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.queueSize != tt.wantQueueSize {
				t.Errorf("queueSize = %d; want %d", pool.queueSize, tt.wantQueueSize)
			}
		})
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProbe(&counter), WithWorkers(8), WithQueueSize(50))
	pool.Start()

	const numJobs = 100
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(Job{Index: i})
		}
		pool.Close()
	}()

	drain(pool)

	if got := atomic.LoadInt32(&counter); got != numJobs {
		t.Errorf("probed = %d; want %d", got, numJobs)
	}
}
