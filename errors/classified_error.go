package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// classifiedError is the concrete ClassifiedError.
// It is private to enforce construction through package functions.
type classifiedError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *classifiedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *classifiedError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *classifiedError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *classifiedError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil.
func (e *classifiedError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error.
func (e *classifiedError) Unwrap() error {
	return e.cause
}

// asClassified returns err as a ClassifiedError, converting plain errors
// into CodeUnknown errors that wrap the original.
func asClassified(err error) ClassifiedError {
	var classified ClassifiedError
	if stderrors.As(err, &classified) {
		return classified
	}
	return &classifiedError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	return maps.Clone(ctx)
}
