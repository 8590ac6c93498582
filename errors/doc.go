// Package errors provides structured error handling for file processing.
//
// Every failure a processing call can report carries an ErrorCode, an
// ErrorClassification and optional context metadata. The package stays
// compatible with the standard library (errors.Is, errors.As, errors.Unwrap).
//
// # Error Codes
//
// Validation failures are mutually exclusive and reported in this order:
//
//   - CodeMissingIdentifier: the request has no file name
//   - CodeInvalidType: the file data is not text
//   - CodeEmptyContent: the file data is empty or whitespace only
//
// Failures after validation:
//
//   - CodeStorageFailed: the processed content could not be saved (retryable)
//
// Everything else: CodeInvalidConfig, CodeInternal, CodeUnknown.
//
// # Quick Start
//
//	err := errors.New(errors.CodeMissingIdentifier, "file name is missing")
//	err = errors.WithContext(err, "call_id", id)
//
//	if errors.GetCode(err).IsValidation() {
//	    // the caller sent bad input
//	}
//
// # Serialization
//
// ToJSON flattens any error into an ErrorResponse, dropping the wrapped
// chain. ClassifiedError values also implement json.Marshaler.
package errors
