package processor

import (
	"context"
	"path"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jmgilman/fileproc/errors"
	"github.com/jmgilman/fileproc/store"
)

// Validation failures. They are returned as-is so callers can match them
// with errors.Is.
var (
	ErrMissingIdentifier = errors.New(errors.CodeMissingIdentifier, "file name is missing")
	ErrInvalidType       = errors.New(errors.CodeInvalidType, "file data must be a string")
	ErrEmptyContent      = errors.New(errors.CodeEmptyContent, "file data cannot be empty")
)

// savePerm is the mode processed files are saved with.
const savePerm = 0o644

// unnamedKey is the store key for names that reduce to no file name, such as "." or "/".
const unnamedKey = "unnamed"

// ValidatingProcessor runs the validate, acquire, transform, release
// sequence for each request. It holds no per-call state.
type ValidatingProcessor struct {
	observer Observer
	store    store.Store
	newID    func() string
}

// Option configures a ValidatingProcessor.
type Option func(*ValidatingProcessor)

// WithObserver sets the observer that receives each call's events.
func WithObserver(o Observer) Option {
	return func(p *ValidatingProcessor) {
		if o != nil {
			p.observer = o
		}
	}
}

// WithStore sets where transformed content is saved. Without a store the
// save step is simulated only.
func WithStore(s store.Store) Option {
	return func(p *ValidatingProcessor) {
		p.store = s
	}
}

// WithIDGenerator overrides how call IDs are generated.
func WithIDGenerator(fn func() string) Option {
	return func(p *ValidatingProcessor) {
		if fn != nil {
			p.newID = fn
		}
	}
}

// New creates a ValidatingProcessor. By default events are discarded and
// call IDs are random UUIDs.
func New(opts ...Option) *ValidatingProcessor {
	p := &ValidatingProcessor{
		observer: nopObserver{},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validate checks req in order and returns its content as text.
// The first failing check decides the error.
func Validate(req Request) (string, errors.ClassifiedError) {
	if req.Name == "" {
		return "", ErrMissingIdentifier
	}

	text, ok := req.Data.(string)
	if !ok {
		return "", ErrInvalidType
	}

	if strings.TrimFunc(text, isTrimSpace) == "" {
		return "", ErrEmptyContent
	}

	return text, nil
}

// isTrimSpace reports whether r counts as blank: the Unicode Zs category
// plus tab, vertical tab, form feed, BOM and the line terminators LF, CR,
// LS and PS. NEL (U+0085) is not blank.
func isTrimSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// StoreKey returns the flat key content for name is saved under: the last
// element of the cleaned, slash-separated name. Keys never contain a
// directory, so one call's save cannot block another's.
func StoreKey(name string) string {
	key := path.Base(path.Clean("/" + strings.ReplaceAll(name, `\`, "/")))
	switch key {
	case "/", ".", "..", "":
		return unnamedKey
	}
	return key
}

// Transform returns the processed form of content: its Unicode upper case.
func Transform(content string) string {
	// Casers are stateful; one per call.
	return cases.Upper(language.Und).String(content)
}

// Process handles one request and returns its outcome. Cleanup runs on
// every path: the handle, if acquired, is released and a cleanup_complete
// event is always the last event emitted.
func (p *ValidatingProcessor) Process(ctx context.Context, req Request) Outcome {
	out := Outcome{
		CallID: p.newID(),
		Name:   req.Name,
	}

	var handle *Handle
	defer func() {
		if handle != nil {
			p.emit(ctx, out, Event{Kind: EventClosingHandle, Handle: handle.ID()})
			handle.Release()
			handle = nil
		} else {
			p.emit(ctx, out, Event{Kind: EventNoHandle})
		}
		p.emit(ctx, out, Event{Kind: EventCleanupComplete})
	}()

	text, err := Validate(req)
	if err != nil {
		out.Err = err
		p.emit(ctx, out, Event{Kind: EventFailed, Err: err})
		return out
	}

	handle = acquireHandle(req.Name)
	out.HandleID = handle.ID()
	p.emit(ctx, out, Event{Kind: EventOpened, Handle: handle.ID()})
	p.emit(ctx, out, Event{Kind: EventProcessing, Handle: handle.ID()})

	content := Transform(text)
	p.emit(ctx, out, Event{Kind: EventContent, Handle: handle.ID(), Content: content})

	key, err := p.save(req.Name, content)
	if err != nil {
		out.Err = err
		p.emit(ctx, out, Event{Kind: EventFailed, Handle: handle.ID(), Err: err})
		return out
	}

	out.Content = content
	out.SavedAs = key
	p.emit(ctx, out, Event{Kind: EventSaved, Handle: handle.ID()})
	return out
}

// save writes content under StoreKey(name) and returns the key used. It
// returns an empty key when no store is configured.
func (p *ValidatingProcessor) save(name, content string) (string, errors.ClassifiedError) {
	if p.store == nil {
		return "", nil
	}
	key := StoreKey(name)
	if err := p.store.WriteFile(key, []byte(content), savePerm); err != nil {
		return "", errors.WrapWithContext(err, errors.CodeStorageFailed, "failed to save processed file", map[string]interface{}{
			"file":  name,
			"key":   key,
			"store": p.store.Type().String(),
		})
	}
	return key, nil
}

// emit fills in the call fields of e and hands it to the observer.
func (p *ValidatingProcessor) emit(ctx context.Context, out Outcome, e Event) {
	e.CallID = out.CallID
	e.Name = out.Name
	p.observer.Observe(ctx, e)
}
