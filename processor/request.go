package processor

import (
	"github.com/jmgilman/fileproc/errors"
)

// Request is a single processing call's input.
type Request struct {
	// Name identifies the file. Empty means absent.
	Name string
	// Data is the file content. Only string values are accepted.
	Data any
}

// Outcome is the single result of one Process call: success, or a failure
// carrying exactly one error code.
type Outcome struct {
	// CallID uniquely identifies the call in logs and events.
	CallID string
	// Name echoes Request.Name.
	Name string
	// HandleID is the handle acquired during the call, empty if validation failed.
	HandleID string
	// Content is the transformed content. Empty on failure.
	Content string
	// SavedAs is the store key the content was written to. Empty when no
	// store is configured or the call failed.
	SavedAs string
	// Err is nil on success.
	Err errors.ClassifiedError
}

// Succeeded reports whether the call completed without error.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Code returns the failure code, or the empty code on success.
func (o Outcome) Code() errors.ErrorCode {
	if o.Err == nil {
		return ""
	}
	return o.Err.Code()
}

// Message returns the failure message, or the empty string on success.
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Message()
}
