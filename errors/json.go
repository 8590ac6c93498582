package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat, serializable form of an error.
//
// The wrapped error chain is excluded; only the code, message,
// classification and context are exposed.
type ErrorResponse struct {
	// Code is the error code identifying the kind of failure.
	Code string `json:"code" yaml:"code"`

	// Message is the human-readable error message.
	Message string `json:"message" yaml:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification" yaml:"classification"`

	// Context contains optional metadata about the error.
	Context map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse. Returns nil if err is nil.
//
// Plain errors are reported as CodeUnknown with their Error() text.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var classified ClassifiedError
	if As(err, &classified) {
		message = classified.Message()
		context = classified.Context()
	}

	return &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        message,
		Classification: string(GetClassification(err)),
		Context:        context,
	}
}

// MarshalJSON implements json.Marshaler so a ClassifiedError can be passed
// to json.Marshal directly.
//
// Example:
//
//	err := errors.New(errors.CodeEmptyContent, "file data cannot be empty")
//	data, _ := json.Marshal(err)
//	// {"code":"EMPTY_CONTENT","message":"file data cannot be empty","classification":"PERMANENT"}
func (e *classifiedError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	})
	if err != nil {
		// context values may not be serializable
		return nil, &classifiedError{
			code:           CodeInternal,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}
