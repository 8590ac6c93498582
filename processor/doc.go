// Package processor validates and processes simulated file requests.
//
// A ValidatingProcessor checks each Request in a fixed order, acquires a
// call-local Handle only after every check passes, upper-cases the content,
// optionally saves it to a store.Store, and always releases the handle
// before returning. Every call yields exactly one Outcome; nothing panics
// or escapes as an error.
//
// Validation order (first failure wins):
//
//  1. empty name        -> errors.CodeMissingIdentifier
//  2. data not a string -> errors.CodeInvalidType
//  3. blank data        -> errors.CodeEmptyContent
//
// Progress is reported as a sequence of Events to an Observer. On success
// the sequence is:
//
//	opened, processing, content, saved, closing_handle, cleanup_complete
//
// and on a validation failure:
//
//	failed, no_handle, cleanup_complete
//
// Use NewLogObserver to turn events into structured log records, or a
// Recorder to capture them.
//
// Example:
//
//	rec := &processor.Recorder{}
//	p := processor.New(processor.WithObserver(rec))
//	out := p.Process(ctx, processor.Request{Name: "myFile.txt", Data: "Hello, world!"})
//	if out.Succeeded() {
//	    fmt.Println(out.Content) // HELLO, WORLD!
//	}
package processor
