package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an engine error
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates a caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeInvalidDistribution indicates a misconfigured weight table.
	// Raised while catalogs are built, never while resolving.
	CodeInvalidDistribution Code = "invalid_distribution"

	// CodeTagAbsent indicates a Get or Consume on a tag that is not set
	CodeTagAbsent Code = "tag_absent"

	// CodeDeferredTaskFailure indicates a deferred callback returned an error or panicked
	CodeDeferredTaskFailure Code = "deferred_task_failure"

	// CodePreconditionSkip indicates an effect found its world context missing.
	// It is a documented no-op, not a failure.
	CodePreconditionSkip Code = "precondition_skip"

	// CodeInternal indicates an internal error
	CodeInternal Code = "internal"
)

// Error is an engine error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, preserving its code
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var chaosErr *Error
	if errors.As(err, &chaosErr) {
		return &Error{
			Code:    chaosErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(chaosErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// InvalidDistributionf creates a formatted invalid distribution error
func InvalidDistributionf(format string, args ...any) *Error {
	return Newf(CodeInvalidDistribution, format, args...)
}

// TagAbsentf creates a formatted tag absent error
func TagAbsentf(format string, args ...any) *Error {
	return Newf(CodeTagAbsent, format, args...)
}

// DeferredTaskFailure wraps the cause of a failed deferred callback
func DeferredTaskFailure(cause error, taskID string) *Error {
	return &Error{
		Code:    CodeDeferredTaskFailure,
		Message: fmt.Sprintf("deferred task %s failed", taskID),
		Cause:   cause,
		Meta:    map[string]any{"task_id": taskID},
	}
}

// PreconditionSkip creates a precondition skip with the given reason
func PreconditionSkip(reason string) *Error {
	return New(CodePreconditionSkip, reason)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var chaosErr *Error
	if errors.As(err, &chaosErr) {
		return chaosErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsInvalidDistribution checks if the error is an invalid distribution error
func IsInvalidDistribution(err error) bool {
	return Is(err, CodeInvalidDistribution)
}

// IsTagAbsent checks if the error is a tag absent error
func IsTagAbsent(err error) bool {
	return Is(err, CodeTagAbsent)
}

// IsDeferredTaskFailure checks if the error is a deferred task failure
func IsDeferredTaskFailure(err error) bool {
	return Is(err, CodeDeferredTaskFailure)
}

// IsPreconditionSkip checks if the error is a precondition skip
func IsPreconditionSkip(err error) bool {
	return Is(err, CodePreconditionSkip)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return Is(err, CodeInternal)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var chaosErr *Error
	if errors.As(err, &chaosErr) {
		return chaosErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var chaosErr *Error
	if errors.As(err, &chaosErr) {
		return chaosErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
