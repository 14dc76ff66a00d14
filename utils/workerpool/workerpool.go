package workerpool

import (
	"errors"
	"sync"

	"github.com/abhissng/axon/adapters/log"
	"github.com/abhissng/axon/utils/helpers"
)

var (
	// ErrPoolSaturated is returned when the task queue is full.
	ErrPoolSaturated = errors.New("workerpool: task queue is full")
	// ErrPoolClosed is returned when the pool has been shut down.
	ErrPoolClosed = errors.New("workerpool: pool is shut down")
)

// Pool is a bounded executor for dispatch command work.
// Saturation is surfaced to the caller instead of queueing without limit,
// so a slow backend cannot absorb every goroutine in the process.
type Pool struct {
	numWorkers int
	taskQueue  chan func()
	wg         sync.WaitGroup
	mu         sync.RWMutex
	closed     bool
	log        *log.Log
}

// Option is a function type for configuring the Pool.
type Option func(*Pool)

// WithNumWorkers sets the number of workers in the pool.
func WithNumWorkers(numWorkers int) Option {
	return func(p *Pool) {
		if numWorkers > 0 {
			p.numWorkers = numWorkers
		}
	}
}

// WithTaskQueueSize sets the size of the task queue.
func WithTaskQueueSize(size int) Option {
	return func(p *Pool) {
		if size >= 0 {
			p.taskQueue = make(chan func(), size)
		}
	}
}

// WithLogger sets the logger for the pool.
func WithLogger(l *log.Log) Option {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPool creates a new Pool with the provided options and starts its workers.
func NewPool(options ...Option) *Pool {
	// Default configuration
	p := &Pool{
		numWorkers: 10,                          // Default number of workers
		taskQueue:  make(chan func(), 100),      // Default task queue size
		log:        log.NewBasicLogger(helpers.IsProdEnvironment()), // Basic logger by default
	}

	// Apply options to override defaults
	for _, option := range options {
		option(p)
	}

	p.start()
	return p
}

// start launches the workers.
func (p *Pool) start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range p.taskQueue {
				p.run(task)
			}
		}()
	}
}

// run executes one task, keeping the worker alive across panics.
func (p *Pool) run(task func()) {
	defer func() {
		helpers.RecoverException(recover())
	}()
	task()
}

// Submit offers a task to the pool without blocking.
// It returns ErrPoolSaturated when the queue is full and
// ErrPoolClosed after Shutdown.
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.taskQueue <- task:
		return nil
	default:
		return ErrPoolSaturated
	}
}

// QueueDepth returns the number of queued tasks awaiting a worker.
func (p *Pool) QueueDepth() int {
	return len(p.taskQueue)
}

// Shutdown gracefully shuts down the pool, draining queued tasks first.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.taskQueue) // Stop accepting new tasks
	p.mu.Unlock()

	p.wg.Wait()       // Wait for all workers to finish
	_ = p.log.Sync()  // Flush the logger
}
