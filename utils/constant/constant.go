package constant

import (
	"time"

	"github.com/abhissng/axon/utils/types"
)

// These are generic constant for the application
const (
	RequestID     = "request_id"
	CorrelationID = "correlation_id"
	Logger        = "logger"
	MetaData      = "meta_data"

	// These are general constant for config file
	Service            = "Service"
	Environment        = "Environment"
	RunMode            = "RunMode"
	LogRotationEnabled = "LogRotationEnabled"
)

// These are generic constant status
const (
	Pending types.Status = "pending"
	Failed  types.Status = "failed"
	Success types.Status = "success"
	Error   types.Status = "error"
)

// These are generic typed constant for the application
const (
	IS_PROD types.StringConstant = "IS_PROD"
)

// Dispatch timing defaults
const (
	DefaultDispatchTimeout time.Duration = 3 * time.Second
)
