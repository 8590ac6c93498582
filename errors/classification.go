package errors

// ErrorClassification indicates whether a failure is transient or permanent.
// Nothing in this module retries; the classification is reported so callers
// can decide for themselves.
type ErrorClassification string

const (
	// ClassificationRetryable indicates a temporary failure that may succeed on retry.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates a failure that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry could succeed.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Input problems never fix themselves
	CodeMissingIdentifier: ClassificationPermanent,
	CodeInvalidType:       ClassificationPermanent,
	CodeEmptyContent:      ClassificationPermanent,
	CodeInvalidConfig:     ClassificationPermanent,

	CodeStorageFailed: ClassificationRetryable,

	CodeInternal: ClassificationPermanent,
	CodeUnknown:  ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unmapped codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
