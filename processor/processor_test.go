package processor

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/fileproc/errors"
	"github.com/jmgilman/fileproc/store"
)

var (
	successKinds = []EventKind{
		EventOpened, EventProcessing, EventContent, EventSaved,
		EventClosingHandle, EventCleanupComplete,
	}
	validationFailureKinds = []EventKind{
		EventFailed, EventNoHandle, EventCleanupComplete,
	}
)

func newTestProcessor(t *testing.T, opts ...Option) (*ValidatingProcessor, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	n := 0
	opts = append([]Option{
		WithObserver(rec),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("call-%d", n)
		}),
	}, opts...)
	return New(opts...), rec
}

// failingStore rejects every write.
type failingStore struct {
	err error
}

func (f failingStore) WriteFile(string, []byte, fs.FileMode) error { return f.err }
func (f failingStore) ReadFile(string) ([]byte, error)             { return nil, f.err }
func (f failingStore) Exists(string) (bool, error)                 { return false, f.err }
func (f failingStore) Type() store.Type                            { return store.TypeUnknown }

func TestProcess_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		req         Request
		wantCode    errors.ErrorCode
		wantContent string
		wantKinds   []EventKind
	}{
		{
			name:      "no input",
			req:       Request{},
			wantCode:  errors.CodeMissingIdentifier,
			wantKinds: validationFailureKinds,
		},
		{
			name:      "data is a number",
			req:       Request{Name: "myFile.txt", Data: 42},
			wantCode:  errors.CodeInvalidType,
			wantKinds: validationFailureKinds,
		},
		{
			name:      "data is empty",
			req:       Request{Name: "myFile.txt", Data: ""},
			wantCode:  errors.CodeEmptyContent,
			wantKinds: validationFailureKinds,
		},
		{
			name:        "valid data",
			req:         Request{Name: "myFile.txt", Data: "Hello, world!"},
			wantContent: "HELLO, WORLD!",
			wantKinds:   successKinds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rec := newTestProcessor(t)

			out := p.Process(context.Background(), tt.req)

			assert.Equal(t, tt.wantKinds, rec.Kinds())
			assert.Equal(t, tt.wantContent, out.Content)
			if tt.wantCode == "" {
				require.True(t, out.Succeeded())
				assert.Equal(t, errors.ErrorCode(""), out.Code())
				assert.Equal(t, "Handle-myFile.txt", out.HandleID)
				return
			}
			require.False(t, out.Succeeded())
			assert.Equal(t, tt.wantCode, out.Code())
			assert.Empty(t, out.HandleID)
		})
	}
}

func TestProcess_ValidationOrder(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"missing name beats wrong type", Request{Data: 42}, ErrMissingIdentifier},
		{"missing name beats empty data", Request{Data: ""}, ErrMissingIdentifier},
		{"missing name with valid data", Request{Data: "hello"}, ErrMissingIdentifier},
		{"nil data is not text", Request{Name: "a.txt"}, ErrInvalidType},
		{"byte slice is not text", Request{Name: "a.txt", Data: []byte("hi")}, ErrInvalidType},
		{"whitespace only is empty", Request{Name: "a.txt", Data: " \t\n "}, ErrEmptyContent},
		{"byte order mark is empty", Request{Name: "a.txt", Data: "\uFEFF"}, ErrEmptyContent},
		{"ideographic space is empty", Request{Name: "a.txt", Data: "\u3000\u2028"}, ErrEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestProcessor(t)
			out := p.Process(context.Background(), tt.req)
			require.True(t, errors.Is(out.Err, tt.want), "got %v", out.Err)
		})
	}
}

func TestProcess_FailureMessages(t *testing.T) {
	p, rec := newTestProcessor(t)

	out := p.Process(context.Background(), Request{Name: "myFile.txt", Data: 42})

	assert.Equal(t, "file data must be a string", out.Message())
	events := rec.Events()
	require.Len(t, events, 3)
	require.NotNil(t, events[0].Err)
	assert.Equal(t, errors.CodeInvalidType, events[0].Err.Code())
	assert.Equal(t, "myFile.txt", events[0].Name)
	assert.Equal(t, "call-1", events[0].CallID)
}

func TestProcess_CleanupExactlyOnce(t *testing.T) {
	requests := []Request{
		{},
		{Name: "a.txt", Data: 3.14},
		{Name: "a.txt", Data: "   "},
		{Name: "a.txt", Data: "ok"},
	}

	for i, req := range requests {
		t.Run(fmt.Sprintf("request %d", i), func(t *testing.T) {
			p, rec := newTestProcessor(t)
			p.Process(context.Background(), req)

			require.Equal(t, 1, rec.Count(EventCleanupComplete))
			require.Equal(t, 1, rec.Count(EventClosingHandle)+rec.Count(EventNoHandle))
			kinds := rec.Kinds()
			require.Equal(t, EventCleanupComplete, kinds[len(kinds)-1])
		})
	}
}

func TestProcess_SavesToStore(t *testing.T) {
	st := store.NewMemory()
	p, _ := newTestProcessor(t, WithStore(st))

	out := p.Process(context.Background(), Request{Name: "myFile.txt", Data: "Hello, world!"})
	require.True(t, out.Succeeded())

	data, err := st.ReadFile("myFile.txt")
	require.NoError(t, err)
	assert.Equal(t, "HELLO, WORLD!", string(data))
}

func TestProcess_NothingSavedOnValidationFailure(t *testing.T) {
	st := store.NewMemory()
	p, _ := newTestProcessor(t, WithStore(st))

	p.Process(context.Background(), Request{Name: "myFile.txt", Data: ""})

	ok, err := st.Exists("myFile.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProcess_StorageFailure(t *testing.T) {
	cause := stderrors.New("store is read-only")
	p, rec := newTestProcessor(t, WithStore(failingStore{err: cause}))

	out := p.Process(context.Background(), Request{Name: "myFile.txt", Data: "Hello"})

	require.False(t, out.Succeeded())
	assert.Equal(t, errors.CodeStorageFailed, out.Code())
	assert.True(t, errors.IsRetryable(out.Err))
	assert.True(t, errors.Is(out.Err, cause))
	assert.Equal(t, "myFile.txt", out.Err.Context()["file"])
	assert.Empty(t, out.Content)
	assert.Equal(t, "Handle-myFile.txt", out.HandleID)

	assert.Equal(t, []EventKind{
		EventOpened, EventProcessing, EventContent, EventFailed,
		EventClosingHandle, EventCleanupComplete,
	}, rec.Kinds())
}

func TestProcess_EventFields(t *testing.T) {
	p, rec := newTestProcessor(t)

	p.Process(context.Background(), Request{Name: "myFile.txt", Data: "abc"})

	for _, e := range rec.Events() {
		assert.Equal(t, "call-1", e.CallID)
		assert.Equal(t, "myFile.txt", e.Name)
		assert.Nil(t, e.Err)
	}
	events := rec.Events()
	assert.Equal(t, "ABC", events[2].Content)
	assert.Equal(t, "Handle-myFile.txt", events[4].Handle)
}

func TestProcess_DefaultsAreUsable(t *testing.T) {
	out := New().Process(context.Background(), Request{Name: "x", Data: "y"})

	require.True(t, out.Succeeded())
	assert.NotEmpty(t, out.CallID)
	assert.Equal(t, "Y", out.Content)
}

func TestProcess_IndependentCalls(t *testing.T) {
	rec := &Recorder{}
	st := store.NewMemory()
	p := New(WithObserver(rec), WithStore(st))

	const calls = 20
	outcomes := make([]Outcome, calls)
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = p.Process(context.Background(), Request{
				Name: fmt.Sprintf("file-%d.txt", i),
				Data: fmt.Sprintf("content %d", i),
			})
		}(i)
	}
	wg.Wait()

	ids := make(map[string]bool)
	for i, out := range outcomes {
		require.True(t, out.Succeeded())
		assert.Equal(t, fmt.Sprintf("CONTENT %d", i), out.Content)
		ids[out.CallID] = true

		var kinds []EventKind
		for _, e := range rec.Call(out.CallID) {
			kinds = append(kinds, e.Kind)
		}
		assert.Equal(t, successKinds, kinds)
	}
	assert.Len(t, ids, calls)
}

func TestTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, world!", "HELLO, WORLD!"},
		{"already UPPER", "ALREADY UPPER"},
		{"straße", "STRASSE"},
		{"  padded  ", "  PADDED  "},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Transform(tt.in))
		})
	}
}

func TestValidate(t *testing.T) {
	text, err := Validate(Request{Name: "a.txt", Data: " keep spaces "})
	require.Nil(t, err)
	assert.Equal(t, " keep spaces ", text)

	_, err = Validate(Request{})
	assert.Equal(t, errors.CodeMissingIdentifier, err.Code())
}

func TestValidate_NextLineIsContent(t *testing.T) {
	text, err := Validate(Request{Name: "a.txt", Data: "\u0085"})
	require.Nil(t, err)
	assert.Equal(t, "\u0085", text)
}

func TestStoreKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"myFile.txt", "myFile.txt"},
		{"a/b.txt", "b.txt"},
		{`dir\file.txt`, "file.txt"},
		{"../../etc/passwd", "passwd"},
		{"trailing/", "trailing"},
		{".", "unnamed"},
		{"/", "unnamed"},
		{"..", "unnamed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StoreKey(tt.name))
		})
	}
}

func TestProcess_SavedNamesNeverFail(t *testing.T) {
	orders := [][]string{
		{".", "/", "..", "a/b.txt", "a"},
		{"a", "a/b.txt", "a/b.txt/c"},
	}

	for i, names := range orders {
		t.Run(fmt.Sprintf("order %d", i), func(t *testing.T) {
			st := store.NewMemory()
			p, _ := newTestProcessor(t, WithStore(st))

			for _, name := range names {
				out := p.Process(context.Background(), Request{Name: name, Data: "x"})
				require.True(t, out.Succeeded(), "name %q: %v", name, out.Err)
				assert.Equal(t, StoreKey(name), out.SavedAs)

				data, err := st.ReadFile(out.SavedAs)
				require.NoError(t, err)
				assert.Equal(t, "X", string(data))
			}
		})
	}
}
