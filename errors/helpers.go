package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// It is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// It is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost ClassifiedError in err's chain.
// Returns CodeUnknown if err is nil or carries no code.
//
// Example:
//
//	switch errors.GetCode(outcome.Err) {
//	case errors.CodeMissingIdentifier:
//	    // ask for a file name
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var classified ClassifiedError
	if stderrors.As(err, &classified) {
		return classified.Code()
	}

	return CodeUnknown
}

// GetClassification extracts the classification from err's chain.
// Returns ClassificationPermanent if err is nil or unclassified.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var classified ClassifiedError
	if stderrors.As(err, &classified) {
		return classified.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if err is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
