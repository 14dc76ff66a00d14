package blame

import (
	"github.com/abhissng/axon/utils/constant"
	"github.com/abhissng/axon/utils/types"
)

// Error Identifiers for the gateway dispatch path
const (
	ErrorInternalServerError   types.ErrorCode = "error-internal-server-error"
	ErrorSelectorInvalid       types.ErrorCode = "error-selector-config-invalid"
	ErrorPolicyMissing         types.ErrorCode = "error-policy-not-configured"
	ErrorInvocationFailed      types.ErrorCode = "error-rpc-invocation-failed"
	ErrorCircuitBreakerOpen    types.ErrorCode = "error-circuit-breaker-open"
	ErrorExecutionRejected     types.ErrorCode = "error-execution-rejected"
	ErrorCommandCancelled      types.ErrorCode = "error-command-cancelled"
	ErrorUnexpectedPanic       types.ErrorCode = "error-unexpected-panic"
	ErrorNoInstanceAvailable   types.ErrorCode = "error-no-instance-available"
	ErrorRegistryUnreachable   types.ErrorCode = "error-registry-unreachable"
	ErrorMarshalFailed         types.ErrorCode = "error-marshal-failed"
	ErrorUnmarshalFailed       types.ErrorCode = "error-unmarshal-failed"
	ErrorConfigLoadFailure     types.ErrorCode = "error-config-load-failure"
	ErrorInvocationTimeout     types.ErrorCode = "error-rpc-invocation-timeout"
	ErrorTypeConversion        types.ErrorCode = "error-type-conversion"
	ErrorRequestContextMissing types.ErrorCode = "error-request-context-missing"
)

/*
** These are internal error functions for the dispatch path
 */

// InternalServerError is an internal server error.
func InternalServerError(cause error) Blame {
	return NewBlame(ErrorInternalServerError, "internal server error", "an unexpected internal error occurred").
		WithComponent(constant.ErrLibrary).
		WithResponseType(constant.InternalServer).
		WithCause(cause)
}

// SelectorInvalid is returned when a selector is missing its required identity fields.
func SelectorInvalid() Blame {
	return NewBlame(ErrorSelectorInvalid, "selector config invalid", "selector handle requires registry and application name").
		WithComponent(constant.ErrResolver).
		WithResponseType(constant.BadRequest)
}

// PolicyMissing is returned when no selector/rule policy is configured for a plugin.
func PolicyMissing(plugin string) Blame {
	return NewBlame(ErrorPolicyMissing, "policy not configured", "no selector/rule policy matched the request").
		WithComponent(constant.ErrPlugin).
		WithResponseType(constant.NotFound).
		WithField("plugin", plugin)
}

// InvocationFailed wraps a failed remote call.
func InvocationFailed(cause error) Blame {
	return NewBlame(ErrorInvocationFailed, "rpc invocation failed", "the remote call returned an error").
		WithComponent(constant.ErrTransport).
		WithResponseType(constant.InternalServer).
		WithCause(cause)
}

// InvocationTimeout wraps a remote call that exceeded its execution timeout.
func InvocationTimeout(cause error) Blame {
	return NewBlame(ErrorInvocationTimeout, "rpc invocation timeout", "the remote call exceeded its execution timeout").
		WithComponent(constant.ErrTransport).
		WithResponseType(constant.GatewayTimeout).
		WithCause(cause)
}

// CircuitBreakerOpen is returned when the breaker short-circuits the call.
func CircuitBreakerOpen(group, command string, cause error) Blame {
	return NewBlame(ErrorCircuitBreakerOpen, "circuit breaker open", "the breaker skipped the remote call").
		WithComponent(constant.ErrBreaker).
		WithResponseType(constant.ServiceUnavailable).
		WithField("group_key", group).
		WithField("command_key", command).
		WithCause(cause)
}

// ExecutionRejected is returned when the execution pool refuses a command.
func ExecutionRejected(cause error) Blame {
	return NewBlame(ErrorExecutionRejected, "execution rejected", "the command execution pool is saturated").
		WithComponent(constant.ErrDispatch).
		WithResponseType(constant.ServiceUnavailable).
		WithCause(cause)
}

// CommandCancelled is returned when the caller cancelled before completion.
func CommandCancelled(cause error) Blame {
	return NewBlame(ErrorCommandCancelled, "command cancelled", "the caller cancelled the dispatch before completion").
		WithComponent(constant.ErrDispatch).
		WithResponseType(constant.InternalServer).
		WithCause(cause)
}

// UnexpectedPanic converts a recovered panic into a Blame.
func UnexpectedPanic(value any) Blame {
	return NewBlame(ErrorUnexpectedPanic, "unexpected panic", "a panic was recovered at the dispatch boundary").
		WithComponent(constant.ErrDispatch).
		WithResponseType(constant.InternalServer).
		WithField("panic", value)
}

// NoInstanceAvailable is returned when discovery yields no live instance.
func NoInstanceAvailable(appName string) Blame {
	return NewBlame(ErrorNoInstanceAvailable, "no instance available", "service discovery returned no live instance").
		WithComponent(constant.ErrRegistry).
		WithResponseType(constant.ServiceUnavailable).
		WithField("app_name", appName)
}

// RegistryUnreachable wraps a discovery failure against the registry.
func RegistryUnreachable(registry string, cause error) Blame {
	return NewBlame(ErrorRegistryUnreachable, "registry unreachable", "service discovery against the registry failed").
		WithComponent(constant.ErrRegistry).
		WithResponseType(constant.ServiceUnavailable).
		WithField("registry", registry).
		WithCause(cause)
}

// MarshalFailed wraps a payload encoding failure.
func MarshalFailed(cause error) Blame {
	return NewBlame(ErrorMarshalFailed, "marshal failed", "encoding the request payload failed").
		WithComponent(constant.ErrTransport).
		WithResponseType(constant.InternalServer).
		WithCause(cause)
}

// UnmarshalFailed wraps a payload decoding failure.
func UnmarshalFailed(cause error) Blame {
	return NewBlame(ErrorUnmarshalFailed, "unmarshal failed", "decoding the response payload failed").
		WithComponent(constant.ErrTransport).
		WithResponseType(constant.InternalServer).
		WithCause(cause)
}

// ConfigLoadFailure wraps a configuration bootstrap failure.
func ConfigLoadFailure(cause error) Blame {
	return NewBlame(ErrorConfigLoadFailure, "config load failure", "loading the configuration file failed").
		WithComponent(constant.ErrAdaptors).
		WithResponseType(constant.InternalServer).
		WithCause(cause)
}

// TypeConversion is returned when a stored value cannot be cast to the requested type.
func TypeConversion() Blame {
	return NewBlame(ErrorTypeConversion, "type conversion failed", "the stored value does not match the requested type").
		WithComponent(constant.ErrUtils).
		WithResponseType(constant.InternalServer)
}

// RequestContextMissing is returned when the exchange carries no request context.
func RequestContextMissing() Blame {
	return NewBlame(ErrorRequestContextMissing, "request context missing", "the exchange carries no resolved request context").
		WithComponent(constant.ErrPlugin).
		WithResponseType(constant.BadRequest)
}
