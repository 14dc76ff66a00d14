package exchange

import (
	"github.com/abhissng/axon/utils/types"
	"github.com/google/uuid"
)

// TransportKind identifies the declared transport of an inbound request.
type TransportKind string

const (
	TransportHTTP TransportKind = "http"
	TransportRPC  TransportKind = "rpc"
	TransportGRPC TransportKind = "grpc"
	TransportWS   TransportKind = "websocket"
)

// String returns the string representation of the TransportKind
func (t TransportKind) String() string {
	return string(t)
}

// RequestContext carries the decoded inbound request the chain operates on.
// Interface and Method name the remote target; Arguments hold the decoded
// call payload keyed by parameter name.
type RequestContext struct {
	RequestID  types.RequestID
	Kind       TransportKind
	Interface  string
	Method     string
	ParamTypes []string
	Arguments  map[string]any
	Generic    bool
	Async      bool
}

// RequestOption is a function type for configuring the RequestContext.
type RequestOption func(*RequestContext)

// WithParamTypes sets the declared parameter types of the call.
func WithParamTypes(paramTypes ...string) RequestOption {
	return func(r *RequestContext) {
		r.ParamTypes = paramTypes
	}
}

// WithArguments sets the decoded call arguments.
func WithArguments(arguments map[string]any) RequestOption {
	return func(r *RequestContext) {
		r.Arguments = arguments
	}
}

// WithGeneric marks the call as a generic (untyped) invocation.
func WithGeneric(generic bool) RequestOption {
	return func(r *RequestContext) {
		r.Generic = generic
	}
}

// WithAsync marks the call as fire-and-forget on the backend side.
func WithAsync(async bool) RequestOption {
	return func(r *RequestContext) {
		r.Async = async
	}
}

// NewRequestContext creates a RequestContext with a fresh request id.
func NewRequestContext(kind TransportKind, iface, method string, options ...RequestOption) *RequestContext {
	req := &RequestContext{
		RequestID: types.RequestID(uuid.NewString()),
		Kind:      kind,
		Interface: iface,
		Method:    method,
		Arguments: make(map[string]any),
	}
	for _, option := range options {
		option(req)
	}
	return req
}
