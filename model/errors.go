package model

import "fmt"

// DecodeError reports input that the decoding backend could not parse.
// It is recovered at the per-document boundary: logged, and the empty
// result substituted.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ResourceError reports a document that exceeded a configured resource
// limit (page budget, upload size, time budget). Recovered the same way as
// DecodeError.
type ResourceError struct {
	Path  string
	Limit string
	Err   error
}

func (e *ResourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resource limit exceeded for %s: %s", e.Path, e.Limit)
	}
	return fmt.Sprintf("resource limit exceeded for %s: %s: %v", e.Path, e.Limit, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// UnexpectedError wraps any other failure raised during strategy execution,
// including recovered panics. It never propagates past the per-document
// boundary.
type UnexpectedError struct {
	Path string
	Err  error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error processing %s: %v", e.Path, e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// WriteError reports a failure to serialize or store an output record. It
// is logged, not retried, and does not affect other documents.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
