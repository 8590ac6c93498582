package errors

import "fmt"

// Wrap wraps err with a code and message while preserving it as the cause.
// The result works with errors.Is and errors.As.
//
// If err already carries a classification it is kept; otherwise the default
// for code is used. Returns nil if err is nil.
//
// Example:
//
//	if err := st.WriteFile(name, data, 0o644); err != nil {
//	    return errors.Wrap(err, errors.CodeStorageFailed, "failed to save file")
//	}
func Wrap(err error, code ErrorCode, message string) ClassifiedError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps err with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) ClassifiedError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches context metadata in one step.
// The context map is copied. Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) ClassifiedError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var classified ClassifiedError
	if As(err, &classified) {
		classification = classified.Classification()
	}

	return &classifiedError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
