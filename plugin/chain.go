package plugin

import (
	"context"
	"sort"

	"github.com/abhissng/axon/adapters/log"
	"github.com/abhissng/axon/exchange"
)

// DefaultChain walks an ordered slice of plugins for one request.
// A chain instance is per-request; it keeps a cursor and must not be shared.
type DefaultChain struct {
	plugins []Plugin
	index   int
	log     *log.Log
}

// ChainOption is a function type for configuring the DefaultChain.
type ChainOption func(*DefaultChain)

// WithChainLogger sets the logger for the chain.
func WithChainLogger(l *log.Log) ChainOption {
	return func(c *DefaultChain) {
		if l != nil {
			c.log = l
		}
	}
}

// NewChain creates a per-request chain over the given plugins,
// sorted by ascending Order.
func NewChain(plugins []Plugin, options ...ChainOption) *DefaultChain {
	sorted := make([]Plugin, len(plugins))
	copy(sorted, plugins)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})

	c := &DefaultChain{plugins: sorted}
	for _, option := range options {
		option(c)
	}
	return c
}

// Next executes the next non-skipped plugin in the chain.
// It returns nil once every stage has run or been skipped.
func (c *DefaultChain) Next(ctx context.Context, ex *exchange.Exchange) error {
	for c.index < len(c.plugins) {
		p := c.plugins[c.index]
		c.index++
		if p.Skip(ex) {
			if c.log != nil {
				c.log.Debug("plugin skipped", log.String("plugin", p.Named()))
			}
			continue
		}
		return p.Execute(ctx, ex, c)
	}
	return nil
}
