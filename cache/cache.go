// Package cache supplies plugin policy blobs to chain stages.
//
// Policies arrive from an admin/config plane as opaque serialized
// selector and rule blobs; stages fetch the pair matched for the
// current request by plugin name.
package cache

import (
	"github.com/abhissng/axon/exchange"
)

// PolicySource resolves the selector and rule policy blobs matched for
// an exchange. ok is false when no policy is configured for the plugin.
type PolicySource interface {
	Policy(plugin string, ex *exchange.Exchange) (selector []byte, rule []byte, ok bool)
}
