// Package rpc defines the backend invocation contract used by dispatch.
package rpc

import (
	"context"
	"time"

	"github.com/abhissng/axon/exchange"
	"github.com/abhissng/axon/handle"
)

// ServiceParams is the fully resolved description of one backend call:
// routing from the selector policy, call guarding from the rule policy,
// and the target plus payload from the request context.
type ServiceParams struct {
	Registry string
	AppName  string
	Protocol string
	Port     int

	Interface  string
	Method     string
	ParamTypes []string
	Arguments  map[string]any

	Version string
	Group   string
	Retries int
	Generic bool
	Async   bool

	Timeout time.Duration
}

// Invoker performs one call against a discovered backend instance.
// Implementations must honor ctx cancellation and deadlines.
type Invoker interface {
	Invoke(ctx context.Context, params ServiceParams) (any, error)
}

// ParamsFrom merges the request target with the resolved policies.
func ParamsFrom(req *exchange.RequestContext, selector handle.SelectorHandle, rule handle.RuleHandle) ServiceParams {
	return ServiceParams{
		Registry: selector.Registry,
		AppName:  selector.AppName,
		Protocol: selector.Protocol,
		Port:     selector.Port,

		Interface:  req.Interface,
		Method:     req.Method,
		ParamTypes: req.ParamTypes,
		Arguments:  req.Arguments,

		Version: rule.Version,
		Group:   rule.Group,
		Retries: rule.Retries,
		Generic: req.Generic,
		Async:   req.Async,

		Timeout: rule.ExecutionTimeout(),
	}
}
