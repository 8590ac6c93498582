package processor

// handlePrefix is prepended to the file name to form a handle ID.
const handlePrefix = "Handle-"

// Handle is the token for a simulated open file. It is valid from
// acquisition until Release and never leaves the call that acquired it.
type Handle struct {
	id       string
	released bool
}

func acquireHandle(name string) *Handle {
	return &Handle{id: handlePrefix + name}
}

// ID returns the opaque handle identifier.
func (h *Handle) ID() string {
	return h.id
}

// Released reports whether Release has been called.
func (h *Handle) Released() bool {
	return h.released
}

// Release marks the handle closed. It returns false if the handle was
// already released.
func (h *Handle) Release() bool {
	if h.released {
		return false
	}
	h.released = true
	return true
}
