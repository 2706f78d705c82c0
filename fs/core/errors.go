package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrUnsupported is returned when a provider lacks a capability, such as
	// symbolic links. It is the standard library sentinel, so errors.Is
	// matches wrapped syscall errors that report lack of support.
	ErrUnsupported = errors.ErrUnsupported
)
