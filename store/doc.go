// Package store provides the destination that processed file content is
// saved to.
//
// The only provider is an in-memory filesystem backed by go-billy's memfs,
// so saving never touches disk:
//
//	st := store.NewMemory()
//	if err := st.WriteFile("myFile.txt", []byte("HELLO"), 0o644); err != nil {
//	    return err
//	}
//	data, err := st.ReadFile("myFile.txt")
//
// Unwrap exposes the underlying billy.Filesystem for callers that want to
// inspect or seed it directly.
//
// # Thread Safety
//
// MemoryStore methods are safe for concurrent use. The filesystem returned by
// Unwrap is not guarded.
package store
