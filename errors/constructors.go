package errors

import "fmt"

// New creates a ClassifiedError with the given code and message.
// The classification comes from the code's default.
//
// Example:
//
//	err := errors.New(errors.CodeMissingIdentifier, "file name is missing")
func New(code ErrorCode, message string) ClassifiedError {
	return &classifiedError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a ClassifiedError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidType, "file data must be a string, got %T", data)
func Newf(code ErrorCode, format string, args ...interface{}) ClassifiedError {
	return New(code, fmt.Sprintf(format, args...))
}
