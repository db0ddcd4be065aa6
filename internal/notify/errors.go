package notify

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies the outcome of a single invocation.
type Kind string

const (
	KindNone    Kind = "none"
	KindUsage   Kind = "usage"
	KindOpen    Kind = "open"
	KindWrite   Kind = "write"
	KindClose   Kind = "close"
	KindUnknown Kind = "unknown"
)

// UsageError reports that fewer than two values were supplied.
type UsageError struct {
	Program string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s <filename> <hash>", e.Program)
}

// OpenError reports that the target file could not be opened for appending.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("error opening file %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// WriteError reports that the token could not be written after a successful open.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error writing file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// CloseError reports that the target file could not be closed cleanly.
type CloseError struct {
	Path string
	Err  error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("error closing file %s: %v", e.Path, e.Err)
}

func (e *CloseError) Unwrap() error {
	return e.Err
}

// Classify maps an error returned by this package to its Kind.
// Usage and open errors take precedence, then write, then close.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return KindUsage
	}

	var openErr *OpenError
	if errors.As(err, &openErr) {
		return KindOpen
	}

	var writeErr *WriteError
	if errors.As(err, &writeErr) {
		return KindWrite
	}

	var closeErr *CloseError
	if errors.As(err, &closeErr) {
		return KindClose
	}

	return KindUnknown
}

// ExitCode returns the process exit status for err: 0 on success, 1 otherwise.
func ExitCode(err error) int {
	if Classify(err) == KindNone {
		return 0
	}

	return 1
}

// platformError strips the operation and path that *fs.PathError adds, leaving
// the bare system error description.
func platformError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
