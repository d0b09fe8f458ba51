package data

import "sync/atomic"

// idCounter is the module-local, process-wide monotonic counter backing
// every Handler's id. Archive combined-hash computation depends on ids being
// globally unique within a process, so a single counter is shared by every
// Handler constructor regardless of concrete variant.
var idCounter atomic.Uint64

// nextID returns the next process-unique handler id.
func nextID() uint64 {
	return idCounter.Add(1)
}
