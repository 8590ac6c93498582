package errors

// WithContext returns a copy of err with one more context field.
// Existing fields are preserved.
//
// Plain errors are converted to CodeUnknown. Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeEmptyContent, "file data cannot be empty")
//	err = errors.WithContext(err, "file", "myFile.txt")
func WithContext(err error, key string, value interface{}) ClassifiedError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap returns a copy of err with the given fields merged into its
// context. New fields override existing ones with the same key.
//
// Plain errors are converted to CodeUnknown. Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) ClassifiedError {
	if err == nil {
		return nil
	}

	classified := asClassified(err)
	merged := make(map[string]interface{})
	for k, v := range classified.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &classifiedError{
		code:           classified.Code(),
		classification: classified.Classification(),
		message:        classified.Message(),
		context:        merged,
		cause:          classified.Unwrap(),
	}
}

// WithClassification returns a copy of err with its classification replaced.
//
// Plain errors are converted to CodeUnknown. Returns nil if err is nil.
//
// Example:
//
//	// a full store will not drain by itself
//	err = errors.WithClassification(err, errors.ClassificationPermanent)
func WithClassification(err error, classification ErrorClassification) ClassifiedError {
	if err == nil {
		return nil
	}

	classified := asClassified(err)
	return &classifiedError{
		code:           classified.Code(),
		classification: classification,
		message:        classified.Message(),
		context:        classified.Context(),
		cause:          classified.Unwrap(),
	}
}
