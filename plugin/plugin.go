// Package plugin defines the gateway plugin-chain contracts.
package plugin

import (
	"context"

	"github.com/abhissng/axon/exchange"
)

// Plugin is a single stage of the gateway chain.
// Execute either terminates the request (writing its outcome onto the
// exchange) or delegates to the remaining stages via chain.Next.
type Plugin interface {
	// Named returns the stage name used for policy lookup and logging.
	Named() string
	// Skip reports whether this stage should be bypassed for the exchange.
	Skip(ex *exchange.Exchange) bool
	// Order returns the stage's position weight; lower runs earlier.
	Order() int
	// Execute runs the stage against the exchange.
	Execute(ctx context.Context, ex *exchange.Exchange, chain Chain) error
}

// Chain advances the request to the remaining stages.
type Chain interface {
	Next(ctx context.Context, ex *exchange.Exchange) error
}
