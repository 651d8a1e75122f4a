package store

import "fmt"

// CorruptError indicates the backing file exists but cannot be parsed.
// The store never repairs or discards a corrupt file; operator
// intervention is required.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("store file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// WriteError indicates an I/O failure while persisting the collection.
// The previously persisted state is still intact.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write store file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
