package markupweaver

import (
	"errors"
	"fmt"
)

// Sentinel errors for misuse of the builder protocol. Compare with
// errors.Is against the value returned by Err or Done.
var (
	// ErrEmptyStack is recorded when End is called with no open tag.
	ErrEmptyStack = errors.New("markupweaver: end called with no open tag")

	// ErrWriterBusy is recorded when a builder needs to write while it
	// does not hold the output writer: either a composed child has
	// borrowed it, or this builder already returned it.
	ErrWriterBusy = errors.New("markupweaver: writer is held by another builder")

	// ErrWriterReturned is recorded when Done finds the parent's writer
	// slot already occupied, meaning the writer was returned twice.
	ErrWriterReturned = errors.New("markupweaver: writer already returned to the parent builder")
)

// WriteError wraps a failure reported by the output writer. Writer
// failures are fatal to the chain; nothing is retried.
type WriteError struct {
	Err error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("markupweaver: write failed: %v", e.Err)
}

// Unwrap returns the underlying writer error.
func (e *WriteError) Unwrap() error { return e.Err }

// AttrCountError reports an odd number of arguments passed to Attr. Names
// and values come in pairs; the call is rejected before anything is
// stored.
type AttrCountError struct {
	Count int
}

// Error implements the error interface.
func (e *AttrCountError) Error() string {
	return fmt.Sprintf("markupweaver: attr requires name/value pairs, got %d arguments", e.Count)
}
