package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/abhissng/axon/blame"
	"github.com/abhissng/axon/rpc"
	"github.com/abhissng/axon/utils/circuitBreaker"
	"github.com/abhissng/axon/utils/constant"
	"github.com/abhissng/axon/utils/workerpool"
	"github.com/sony/gobreaker"
)

// Outcome is the terminal signal of one command execution.
// A zero Outcome (nil Value, nil Err) is completion without a value,
// produced by the empty-fallback degradation mode.
type Outcome struct {
	Value any
	Err   blame.Blame
}

// Command runs one breaker-guarded invocation on the execution pool and
// delivers exactly one Outcome. Completion, error, rejection, panic and
// cancellation all funnel through the same single-fire terminal signal.
type Command struct {
	key      circuitBreaker.Key
	breaker  *gobreaker.CircuitBreaker
	invoker  rpc.Invoker
	params   rpc.ServiceParams
	fallback string
	pool     *workerpool.Pool

	done       chan Outcome
	fireOnce   sync.Once
	cancelOnce sync.Once
	cancel     context.CancelFunc
	short      atomic.Bool
}

// NewCommand assembles a command; Run starts it.
func NewCommand(key circuitBreaker.Key, breaker *gobreaker.CircuitBreaker, invoker rpc.Invoker, params rpc.ServiceParams, fallback string, pool *workerpool.Pool) *Command {
	return &Command{
		key:      key,
		breaker:  breaker,
		invoker:  invoker,
		params:   params,
		fallback: fallback,
		pool:     pool,
		done:     make(chan Outcome, 1),
	}
}

// Run submits the guarded invocation to the pool and returns the terminal
// signal channel. The channel receives exactly one Outcome. Pool
// saturation fires an immediate rejection instead of queueing the call.
func (c *Command) Run(ctx context.Context) <-chan Outcome {
	timeout := c.params.Timeout
	if timeout <= 0 {
		timeout = constant.DefaultDispatchTimeout
	}
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	c.cancel = cancel

	task := func() {
		defer func() {
			if r := recover(); r != nil {
				c.fire(Outcome{Err: blame.UnexpectedPanic(r)})
			}
		}()

		value, err := c.breaker.Execute(func() (any, error) {
			if err := execCtx.Err(); err != nil {
				return nil, err
			}
			return c.invoker.Invoke(execCtx, c.params)
		})
		if err != nil {
			c.fire(c.failure(err))
			return
		}
		c.fire(Outcome{Value: value})
	}

	if err := c.pool.Submit(task); err != nil {
		cancel()
		c.fire(Outcome{Err: blame.ExecutionRejected(err)})
	}
	return c.done
}

// Cancel aborts the in-flight invocation. Idempotent; a command whose
// outcome already fired ignores it.
func (c *Command) Cancel() {
	c.cancelOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
	})
}

// ShortCircuited reports whether the breaker rejected the call without
// reaching the backend.
func (c *Command) ShortCircuited() bool {
	return c.short.Load()
}

// failure classifies an execution error into its terminal Outcome.
func (c *Command) failure(err error) Outcome {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.short.Store(true)
		if c.fallback == FallbackEmpty {
			return Outcome{}
		}
		return Outcome{Err: blame.CircuitBreakerOpen(c.key.Group, c.key.Command, err)}
	case errors.Is(err, context.DeadlineExceeded):
		return Outcome{Err: blame.InvocationTimeout(err)}
	case errors.Is(err, context.Canceled):
		return Outcome{Err: blame.CommandCancelled(err)}
	default:
		var b blame.Blame
		if errors.As(err, &b) {
			return Outcome{Err: b}
		}
		return Outcome{Err: blame.InvocationFailed(err)}
	}
}

func (c *Command) fire(outcome Outcome) {
	c.fireOnce.Do(func() {
		c.done <- outcome
	})
}
