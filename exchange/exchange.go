// Package exchange provides the per-request mutable attribute bag shared
// across plugin-chain stages.
package exchange

import (
	"sync"

	"github.com/abhissng/axon/utils/constant"
	"github.com/abhissng/axon/utils/types"
)

// Attribute keys read and written by chain stages.
const (
	AttrRequestContext = "request_context"
	AttrDispatchResult = "dispatch_result"
	AttrResultKind     = "client_response_result_type"
)

// Exchange is a per-request mutable attribute bag.
// It is safe for concurrent use by the request's own goroutines.
type Exchange struct {
	mu    sync.RWMutex
	attrs map[string]any
}

// New creates an empty Exchange.
func New() *Exchange {
	return &Exchange{attrs: make(map[string]any)}
}

// NewWithRequest creates an Exchange carrying the given request context.
func NewWithRequest(req *RequestContext) *Exchange {
	ex := New()
	ex.Put(AttrRequestContext, req)
	return ex
}

// Put stores a value under the given attribute key.
func (e *Exchange) Put(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[key] = value
}

// Get retrieves the value associated with the given attribute key.
func (e *Exchange) Get(key string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	value, ok := e.attrs[key]
	return value, ok
}

// GetString retrieves a string attribute, returning "" when absent or mistyped.
func (e *Exchange) GetString(key string) string {
	value, ok := e.Get(key)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

// Request returns the request context carried by the exchange, or nil.
func (e *Exchange) Request() *RequestContext {
	value, ok := e.Get(AttrRequestContext)
	if !ok {
		return nil
	}
	req, _ := value.(*RequestContext)
	return req
}

// SetResult writes the dispatch result value and marks the response successful.
func (e *Exchange) SetResult(value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[AttrDispatchResult] = value
	e.attrs[AttrResultKind] = constant.Success
}

// SetResultKind tags the exchange with the response result kind.
func (e *Exchange) SetResultKind(kind types.Status) {
	e.Put(AttrResultKind, kind)
}

// Result returns the dispatch result value, if one was written.
func (e *Exchange) Result() (any, bool) {
	return e.Get(AttrDispatchResult)
}

// ResultKind returns the response result kind tag, or "" when untagged.
func (e *Exchange) ResultKind() types.Status {
	value, ok := e.Get(AttrResultKind)
	if !ok {
		return ""
	}
	kind, _ := value.(types.Status)
	return kind
}
