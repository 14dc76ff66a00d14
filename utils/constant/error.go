package constant

import "github.com/abhissng/axon/utils/types"

// These are ComponentErrorType constant
const (
	ErrPlugin    types.ComponentErrorType = "plugin"
	ErrDispatch  types.ComponentErrorType = "dispatch"
	ErrResolver  types.ComponentErrorType = "resolver"
	ErrBreaker   types.ComponentErrorType = "breaker"
	ErrTransport types.ComponentErrorType = "transport"
	ErrRegistry  types.ComponentErrorType = "registry"
	ErrAdaptors  types.ComponentErrorType = "adaptors"
	ErrLibrary   types.ComponentErrorType = "library"
	ErrUtils     types.ComponentErrorType = "utils"
)

// These are generic request error constant
const (
	BadRequest         types.ResponseErrorType = "BadRequest"
	NotFound           types.ResponseErrorType = "NotFound"
	InternalServer     types.ResponseErrorType = "InternalServerError"
	ServiceUnavailable types.ResponseErrorType = "ServiceUnavailable"
	GatewayTimeout     types.ResponseErrorType = "GatewayTimeout"
)
