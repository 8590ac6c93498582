package processor

import (
	"context"
	"slices"
	"sync"

	"github.com/jmgilman/fileproc/errors"
)

// EventKind names one milestone of a processing call.
type EventKind string

const (
	// EventOpened is emitted once the handle has been acquired.
	EventOpened EventKind = "opened"
	// EventProcessing is emitted before the content is transformed.
	EventProcessing EventKind = "processing"
	// EventContent carries the transformed content.
	EventContent EventKind = "content"
	// EventSaved is emitted after the content has been saved.
	EventSaved EventKind = "saved"
	// EventFailed carries the error of a failed call.
	EventFailed EventKind = "failed"
	// EventClosingHandle is emitted during cleanup when a handle was acquired.
	EventClosingHandle EventKind = "closing_handle"
	// EventNoHandle is emitted during cleanup when no handle was acquired.
	EventNoHandle EventKind = "no_handle"
	// EventCleanupComplete is the last event of every call.
	EventCleanupComplete EventKind = "cleanup_complete"
)

// Event is one observation emitted by a processing call.
type Event struct {
	Kind    EventKind
	CallID  string
	Name    string
	Handle  string
	Content string
	// Err is set only on EventFailed.
	Err errors.ClassifiedError
}

// Observer receives the events of processing calls in order.
type Observer interface {
	Observe(ctx context.Context, e Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, e Event)

// Observe calls f(ctx, e).
func (f ObserverFunc) Observe(ctx context.Context, e Event) {
	f(ctx, e)
}

type multiObserver []Observer

func (m multiObserver) Observe(ctx context.Context, e Event) {
	for _, o := range m {
		o.Observe(ctx, e)
	}
}

// Observers fans each event out to every non-nil observer, in order.
func Observers(observers ...Observer) Observer {
	m := make(multiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

type nopObserver struct{}

func (nopObserver) Observe(context.Context, Event) {}

// Recorder is an Observer that keeps every event in memory.
// The zero value is ready to use and safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Observe records e.
func (r *Recorder) Observe(_ context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// Kinds returns the kinds of the recorded events, in order.
func (r *Recorder) Kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Count returns how many events of the given kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Call returns the events recorded for one call ID.
func (r *Recorder) Call(id string) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []Event
	for _, e := range r.events {
		if e.CallID == id {
			events = append(events, e)
		}
	}
	return events
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
