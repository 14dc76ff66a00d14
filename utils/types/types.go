package types

import (
	"strings"

	"go.uber.org/zap"
)

// Field is a structured logging field.
type Field = zap.Field

// StringConstant represents a constant string value.
type StringConstant string

// String returns the string representation of the StringConstant.
func (s StringConstant) String() string {
	return string(s)
}

// RequestID represents a per-request identifier carried on the exchange.
type RequestID string

// String returns the string representation of the RequestID.
func (r RequestID) String() string {
	return string(r)
}

// ErrorCode represents an error code.
type ErrorCode string

// String returns the string representation of the ErrorCode.
func (e ErrorCode) String() string {
	return string(e)
}

// ResponseErrorType represents the type of response error.
type ResponseErrorType string

// String returns the string representation of the ResponseErrorType.
func (e ResponseErrorType) String() string {
	return string(e)
}

// ComponentErrorType represents the type of component error.
type ComponentErrorType string

// String returns the string representation of the ComponentErrorType.
func (e ComponentErrorType) String() string {
	return string(e)
}

// CodecType defines the type of encoder (e.g., JSON, YAML).
type CodecType string

// String returns the string representation of the CodecType.
func (e CodecType) String() string {
	return string(e)
}

// Method to convert string to uppercase
func (s CodecType) ToUpperCase() string {
	return strings.ToUpper(string(s))
}

// Status represents a success/failure status string.
type Status string

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// LogMode represents a logging level for the basic print helpers.
type LogMode string

// String returns the string representation of the LogMode.
func (l LogMode) String() string {
	return string(l)
}
