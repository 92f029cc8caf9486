// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chapters

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kind classifies an extraction failure.
type Kind string

const (
	KindFileNotFound Kind = "file_not_found"
	KindIOFailure    Kind = "io_failure"
)

// Sentinels for errors.Is matching against an *Error.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrIOFailure    = errors.New("i/o failure")
)

// Error is returned by Extract when the document cannot be opened or read.
type Error struct {
	Kind Kind

	// Path is the document path passed to Extract.
	Path string

	// Code is the system error number, or 0 when the cause carries none.
	Code int

	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	if e.Kind == KindFileNotFound {
		return fmt.Sprintf("Error: File not found: %s", e.Path)
	}
	return fmt.Sprintf("I/O error(%d): %s", e.Code, description(e.Err))
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the Kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return e.Kind == KindFileNotFound
	case ErrIOFailure:
		return e.Kind == KindIOFailure
	}
	return false
}

func newError(path string, err error) *Error {
	kind := KindIOFailure
	if errors.Is(err, fs.ErrNotExist) {
		kind = KindFileNotFound
	}
	e := &Error{Kind: kind, Path: path, Err: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		e.Code = int(errno)
	}
	return e
}

// description strips the op and path from an *fs.PathError so the
// message reads like the OS error string.
func description(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
