package store

import (
	"io/fs"
)

// Type represents the kind of backend behind a Store.
type Type int

const (
	// TypeUnknown indicates the backend is unknown or unspecified.
	TypeUnknown Type = iota
	// TypeMemory indicates an in-memory backend.
	TypeMemory
)

// String returns a string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Store is the minimal set of file operations the processor needs to save
// and read back content.
type Store interface {
	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it otherwise. Missing parent directories are created.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file exists. A false result with a
	// non-nil error means existence could not be determined.
	Exists(name string) (bool, error)

	// Type returns the backend type.
	Type() Type
}
