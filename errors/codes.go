package errors

// ErrorCode identifies a specific failure condition.
// Codes are string-based so they read well in logs and serialize naturally to JSON.
type ErrorCode string

const (
	// Validation errors.

	// CodeMissingIdentifier indicates the request carried no file name.
	CodeMissingIdentifier ErrorCode = "MISSING_IDENTIFIER"

	// CodeInvalidType indicates the file data was not text.
	CodeInvalidType ErrorCode = "INVALID_TYPE"

	// CodeEmptyContent indicates the file data was empty or whitespace only.
	CodeEmptyContent ErrorCode = "EMPTY_CONTENT"

	// Storage errors.

	// CodeStorageFailed indicates the processed content could not be saved.
	CodeStorageFailed ErrorCode = "STORAGE_FAILED"

	// Configuration errors.

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// IsValidation reports whether the code belongs to the input validation group.
func (c ErrorCode) IsValidation() bool {
	switch c {
	case CodeMissingIdentifier, CodeInvalidType, CodeEmptyContent:
		return true
	default:
		return false
	}
}
