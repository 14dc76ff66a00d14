// Package blame provides a custom error type that adds additional information and functionality to standard errors.
package blame

import (
	"github.com/abhissng/axon/utils/types"
)

// Blame represents a custom error type that provides additional information and functionality.
type Blame interface {
	// error is embedded to ensure Blame implements the error interface.
	error

	// FetchErrCode returns the error code associated with the error.
	FetchErrCode() types.ErrorCode

	// FetchMessage returns the error message.
	FetchMessage() string

	// FetchDescription returns the error description.
	FetchDescription() string

	// WithMessage sets the error message and returns the updated Blame instance.
	WithMessage(string) *Error

	// WithDescription sets the error description and returns the updated Blame instance.
	WithDescription(string) *Error

	// FetchFields returns a map of additional error fields.
	FetchFields() map[string]any

	// FetchSource returns the source of the error.
	FetchSource() string

	// FetchComponent returns the component associated with the error.
	FetchComponent() types.ComponentErrorType

	// FetchResponseType returns the response type associated with the error.
	FetchResponseType() types.ResponseErrorType

	// FetchCauses returns a slice of underlying errors that caused this error.
	FetchCauses() []error

	// WithField adds a new field to the error and returns the updated Blame instance.
	WithField(key string, value any) *Error

	// WithFields adds multiple fields to the error and returns the updated Blame instance.
	WithFields(fields map[string]any) *Error

	// WithCause adds a new underlying error to the error and returns the updated Blame instance.
	WithCause(err error) *Error

	// WithComponent sets the component associated with the error and returns the updated Blame instance.
	WithComponent(component types.ComponentErrorType) *Error

	// WithResponseType sets the response type associated with the error and returns the updated Blame instance.
	WithResponseType(responseType types.ResponseErrorType) *Error

	// Wrap wraps the blame with the provided options and returns the updated Blame instance.
	Wrap(opts ...BlameOption) Blame

	// EmptyCause sets the causes of the error to an empty slice and returns the updated Blame instance.
	EmptyCause() Blame

	// ErrorFromBlame creates a new error string from a Blame instance.
	ErrorFromBlame() error
}

// NewBlame creates a new instance of Blame with the provided error code, message and description. It captures the source of the error at the point of instantiation.
func NewBlame(
	errCode types.ErrorCode,
	message, description string,
) Blame {
	return NewError(errCode, message, description)
}

// NewBasicBlame creates a new instance of Blame with the provided error code. It captures the source of the error at the point of instantiation.
func NewBasicBlame(
	errCode types.ErrorCode,
) Blame {
	return NewBasicError(errCode)
}

// NilBlame returns a nil blame
func NilBlame() Blame {
	return nil
}

// BlameOption defines an option for modifying Blame creation.
type BlameOption func(*BlameOptions)

// BlameOptions holds options for creating Blame instances.
type BlameOptions struct {
	Fields map[string]any
	Causes []error
}

// NewBlameOptions creates a new BlameOptions instance.
func NewBlameOptions() *BlameOptions {
	return &BlameOptions{
		Fields: make(map[string]any),
		Causes: make([]error, 0),
	}
}

// WithField adds a single field to the Blame.
func WithField(key string, value any) BlameOption {
	return func(opts *BlameOptions) {
		if opts.Fields == nil {
			opts.Fields = make(map[string]any)
		}
		opts.Fields[key] = value
	}
}

// WithFields takes a map[string]any and applies all key-value pairs to BlameOptions.
func WithFields(fields map[string]any) BlameOption {
	return func(opts *BlameOptions) {
		if opts.Fields == nil {
			opts.Fields = make(map[string]any)
		}
		for key, value := range fields {
			opts.Fields[key] = value
		}
	}
}

// WithCauses adds causes to the Blame.
func WithCauses(causes ...error) BlameOption {
	return func(opts *BlameOptions) {
		opts.Causes = causes
	}
}
