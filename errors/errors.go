package errors

// ClassifiedError extends the standard error interface with a code, a
// classification and optional context metadata.
//
// It remains compatible with errors.Is, errors.As and errors.Unwrap.
type ClassifiedError interface {
	error

	// Code returns the error code identifying the kind of failure.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable message without the code prefix.
	Message() string

	// Context returns a copy of the attached metadata, or nil if there is none.
	Context() map[string]interface{}

	// Unwrap returns the wrapped cause, or nil.
	Unwrap() error
}
