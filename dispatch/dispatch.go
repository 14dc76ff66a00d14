// Package dispatch is the RPC dispatch stage of the gateway plugin chain.
// It resolves per-request selector/rule policy blobs, executes one
// breaker-guarded backend call, and writes the outcome onto the exchange.
package dispatch

import (
	"context"

	"github.com/abhissng/axon/adapters/log"
	"github.com/abhissng/axon/blame"
	"github.com/abhissng/axon/cache"
	"github.com/abhissng/axon/exchange"
	"github.com/abhissng/axon/handle"
	"github.com/abhissng/axon/plugin"
	"github.com/abhissng/axon/rpc"
	"github.com/abhissng/axon/utils/circuitBreaker"
	"github.com/abhissng/axon/utils/constant"
	"github.com/abhissng/axon/utils/helpers"
	"github.com/abhissng/axon/utils/workerpool"
)

const (
	// Name is the stage name used for policy lookup and logging.
	Name = "rpc"

	// FallbackEmpty completes the request without a result value when
	// the breaker rejects the call.
	FallbackEmpty = "empty"
)

// RPCPlugin is the dispatch stage. One instance serves all requests;
// per-request state lives on the exchange and in the command.
type RPCPlugin struct {
	source   cache.PolicySource
	invoker  rpc.Invoker
	resolver *handle.Resolver
	breakers *circuitBreaker.Registry
	pool     *workerpool.Pool
	log      *log.Log
	order    int
}

// PluginOption is a function type for configuring the RPCPlugin.
type PluginOption func(*RPCPlugin)

// WithOrder overrides the stage's chain position weight.
func WithOrder(order int) PluginOption {
	return func(p *RPCPlugin) {
		p.order = order
	}
}

// WithPool overrides the command execution pool.
func WithPool(pool *workerpool.Pool) PluginOption {
	return func(p *RPCPlugin) {
		if pool != nil {
			p.pool = pool
		}
	}
}

// WithBreakerRegistry overrides the breaker registry, letting multiple
// stages share breaker state.
func WithBreakerRegistry(registry *circuitBreaker.Registry) PluginOption {
	return func(p *RPCPlugin) {
		if registry != nil {
			p.breakers = registry
		}
	}
}

// New creates the dispatch stage.
func New(source cache.PolicySource, invoker rpc.Invoker, l *log.Log, options ...PluginOption) *RPCPlugin {
	if l == nil {
		l = log.NewBasicLogger(helpers.IsProdEnvironment())
	}
	p := &RPCPlugin{
		source:   source,
		invoker:  invoker,
		resolver: handle.NewResolver(l),
		breakers: circuitBreaker.NewRegistry(),
		pool:     workerpool.NewPool(workerpool.WithLogger(l)),
		log:      l,
		order:    DefaultOrder,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Named returns the stage name.
func (p *RPCPlugin) Named() string {
	return Name
}

// Order returns the stage's chain position weight.
func (p *RPCPlugin) Order() int {
	return p.order
}

// Skip bypasses the stage unless the request declares the RPC transport.
func (p *RPCPlugin) Skip(ex *exchange.Exchange) bool {
	req := ex.Request()
	return req == nil || req.Kind != exchange.TransportRPC
}

// Execute looks up the matched policy and dispatches the call.
// A request with no configured policy passes through untouched.
func (p *RPCPlugin) Execute(ctx context.Context, ex *exchange.Exchange, chain plugin.Chain) error {
	selectorBlob, ruleBlob, ok := p.source.Policy(Name, ex)
	if !ok {
		p.log.Warn(constant.DispatchMessage,
			log.String("plugin", Name),
			log.String("reason", blame.PolicyMissing(Name).FetchDescription()),
		)
		return chain.Next(ctx, ex)
	}
	return p.Dispatch(ctx, ex, chain, selectorBlob, ruleBlob)
}

// Dispatch resolves the policy blobs and performs one guarded invocation.
//
// Failure never terminates the request here: the exchange is tagged with
// the error result kind and the remaining chain stages run, so a later
// stage can render the degraded response. Only success and cancellation
// end the chain at this stage.
func (p *RPCPlugin) Dispatch(ctx context.Context, ex *exchange.Exchange, chain plugin.Chain, selectorBlob, ruleBlob []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b := blame.UnexpectedPanic(r)
			p.log.Error(constant.DispatchMessage,
				log.Stringer("error_code", b.FetchErrCode()),
				log.Any("panic", r),
			)
			ex.SetBlame(b)
			err = chain.Next(ctx, ex)
		}
	}()

	req := ex.Request()
	if req == nil {
		b := blame.RequestContextMissing()
		p.log.Error(constant.DispatchMessage, log.Stringer("error_code", b.FetchErrCode()))
		ex.SetBlame(b)
		return chain.Next(ctx, ex)
	}

	selector, rule := p.resolver.Resolve(selectorBlob, ruleBlob, req)
	if !selector.Valid() {
		p.log.Error(constant.DispatchMessage,
			log.Stringer("error_code", blame.ErrorSelectorInvalid),
			log.String("request_id", req.RequestID.String()),
		)
		return chain.Next(ctx, ex)
	}

	key := circuitBreaker.KeyFor(rule)
	breaker := p.breakers.Fetch(key, circuitBreaker.DeriveOptions(rule)...)
	params := rpc.ParamsFrom(req, selector, rule)

	command := NewCommand(key, breaker, p.invoker, params, rule.Fallback, p.pool)
	defer command.Cancel()

	select {
	case <-ctx.Done():
		command.Cancel()
		return blame.CommandCancelled(ctx.Err())
	case outcome := <-command.Run(ctx):
		if command.ShortCircuited() {
			p.log.Warn(constant.DispatchMessage,
				log.String("group_key", key.Group),
				log.String("command_key", key.Command),
				log.String("reason", "circuit breaker is open"),
			)
		}
		if outcome.Err != nil {
			p.log.Error(constant.DispatchMessage,
				log.Stringer("error_code", outcome.Err.FetchErrCode()),
				log.Blame(outcome.Err),
				log.String("request_id", req.RequestID.String()),
			)
			ex.SetBlame(outcome.Err)
			return chain.Next(ctx, ex)
		}
		if outcome.Value != nil {
			ex.SetResult(outcome.Value)
		} else {
			ex.SetResultKind(constant.Success)
		}
		return nil
	}
}
