package blame

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/abhissng/axon/utils/helpers"
	"github.com/abhissng/axon/utils/types"
)

// Error struct holds the error information
type Error struct {
	errCode      types.ErrorCode //error-invocation-failed
	component    types.ComponentErrorType
	responseType types.ResponseErrorType
	message      string
	description  string
	fields       map[string]any
	causes       []error
	source       string
}

// NewError creates a new Error instance
func NewError(
	errorCode types.ErrorCode,
	message, description string,
) *Error {
	return &Error{
		errCode:     errorCode,
		message:     message,
		description: description,
		fields:      map[string]any{},
		causes:      make([]error, 0),
		source:      findSource(),
	}
}

// NewBasicError creates a new Error instance with the given error code
func NewBasicError(
	errorCode types.ErrorCode,
) *Error {
	return &Error{
		errCode: errorCode,
		fields:  map[string]any{},
		causes:  make([]error, 0),
		source:  findSource(),
	}
}

// FetchErrCode returns the error code of the error as a ErrorCode
func (e *Error) FetchErrCode() types.ErrorCode {
	return e.errCode
}

// FetchMessage returns the message of the error as a string
func (e *Error) FetchMessage() string {
	return e.message
}

// FetchDescription returns the description of the error as a string
func (e *Error) FetchDescription() string {
	return e.description
}

// WithMessage sets the message of the error and returns the updated Error instance.
func (e *Error) WithMessage(msg string) *Error {
	e.message = msg
	return e
}

// WithDescription sets the description of the error and returns the updated Error instance.
func (e *Error) WithDescription(description string) *Error {
	e.description = description
	return e
}

// FetchFields returns the fields of the error as a map[string]any
func (e *Error) FetchFields() map[string]any {
	return e.fields
}

// FetchSource returns the source of the error as a string
func (e *Error) FetchSource() string {
	return e.source
}

// FetchComponent returns the component of the error as a ComponentErrorType
func (e *Error) FetchComponent() types.ComponentErrorType {
	return e.component
}

// FetchResponseType returns the response type of the error as a ResponseErrorType
func (e *Error) FetchResponseType() types.ResponseErrorType {
	return e.responseType
}

// FetchCauses returns the causes of the error as a slice of errors
func (e *Error) FetchCauses() []error {
	return e.causes
}

// EmptyCause sets the causes of the error to an empty slice and returns the updated Error instance.
func (e *Error) EmptyCause() Blame {
	e.causes = make([]error, 0)
	return e
}

// WithField adds a field to the error and returns the updated Error instance.
func (e *Error) WithField(key string, value any) *Error {
	e.fields[key] = value
	return e
}

// WithFields adds multiple fields to the error and returns the updated Error instance.
func (e *Error) WithFields(fields map[string]any) *Error {
	for k, v := range fields {
		e.fields[k] = v
	}
	return e
}

// WithCause adds a cause to the error and returns the updated Error instance.
func (e *Error) WithCause(err error) *Error {
	if len(e.causes) <= 0 {
		e.causes = make([]error, 0)
	}
	e.causes = append(e.causes, err)
	return e
}

// WithComponent sets the component of the error and returns the updated Error instance.
func (e *Error) WithComponent(component types.ComponentErrorType) *Error {
	e.component = component
	return e
}

// WithResponseType sets the response type of the error and returns the updated Error instance.
func (e *Error) WithResponseType(responseType types.ResponseErrorType) *Error {
	e.responseType = responseType
	return e
}

// Error returns the error message with the causes as a string
func (e *Error) Error() string {
	return fmt.Sprintf("%s (causes: %v)", e.errCode.String(), e.causes)
}

// findSource captures the source of the error at the point of instantiation.
func findSource() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", strings.TrimPrefix(file, "/"), line)
}

// WrapToError creates a new Error instance with the current error's properties.
func (e *Error) WrapToError(opts ...BlameOption) *Error {
	// Create a new BlameOptions struct
	options := NewBlameOptions()

	// Apply existing fields and causes to the options
	if len(e.fields) > 0 {
		for k, v := range e.fields {
			options.Fields[k] = v
		}
	}

	if len(e.causes) > 0 {
		options.Causes = append(options.Causes, e.causes...)
	}

	// Apply additional options
	for _, opt := range opts {
		opt(options)
	}

	e.fields = options.Fields
	e.causes = options.Causes
	return e
}

// Wrap wraps the error with the provided options and returns the updated Blame instance.
func (e *Error) Wrap(opts ...BlameOption) Blame {
	return e.WrapToError(opts...)
}

// ErrorFromBlame creates a new error from a Blame instance.
func (e *Error) ErrorFromBlame() error {
	return errors.New(helpers.FetchErrorStack(e.FetchCauses()))
}

// ErrorResponse struct holds the error information for sending as a response
type ErrorResponse struct {
	ErrorCode    types.ErrorCode          `json:"error_code,omitempty"`
	Message      string                   `json:"message,omitempty"`
	Description  string                   `json:"description,omitempty"`
	Fields       map[string]any           `json:"fields,omitempty"`
	Component    types.ComponentErrorType `json:"component,omitempty"`
	ResponseType types.ResponseErrorType  `json:"response_type,omitempty"`
	Causes       []string                 `json:"causes,omitempty"`
}

// FetchErrorResponse converts the error into its response representation.
func (e *Error) FetchErrorResponse() ErrorResponse {
	return ErrorResponse{
		ErrorCode:    e.FetchErrCode(),
		Message:      e.FetchMessage(),
		Description:  e.FetchDescription(),
		Fields:       e.FetchFields(),
		Component:    e.FetchComponent(),
		ResponseType: e.FetchResponseType(),
		Causes:       helpers.FetchErrorStrings(e.FetchCauses()),
	}
}
