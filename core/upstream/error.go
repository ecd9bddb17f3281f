package upstream

import (
	"errors"
	"fmt"
)

// Source names used in Error.Source.
const (
	SourceDesign   = "design"
	SourceRecords  = "records"
	SourceDownload = "download"
	SourceMerge    = "merge"
	SourceStorage  = "storage"
)

// Error wraps a failure of an external collaborator.
type Error struct {
	// Source identifies the collaborator (see the Source constants).
	Source string
	// Op is a short description of the failed operation.
	Op string
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns an *Error for the given source and operation.
// A nil err yields nil.
func Wrap(source, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Source: source, Op: op, Err: err}
}

// Is reports whether err (or anything it wraps) is an upstream *Error.
func Is(err error) bool {
	var ue *Error
	return errors.As(err, &ue)
}
