package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when the addressed location does not
	// currently exist or cannot be opened.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrAlreadyOpened is returned when a single-use, stream-backed handle
	// is opened a second time.
	ErrAlreadyOpened = errors.New("resource stream already consumed")

	// ErrNoLocator is returned when a variant has no URL or URI identity,
	// such as an in-memory buffer or a raw stream wrapper.
	ErrNoLocator = errors.New("resource has no locator identity")

	// ErrNotFileBacked is returned when a resource cannot be resolved to a
	// local filesystem path.
	ErrNotFileBacked = errors.New("resource does not resolve to a local path")

	// ErrNoRelative is returned when a variant has no hierarchical-path
	// semantics to resolve a relative path against.
	ErrNoRelative = errors.New("resource has no hierarchical path semantics")

	// ErrEscapesRoot is returned when relative resolution would produce a
	// path above a root the variant enforces.
	ErrEscapesRoot = errors.New("relative path escapes resource root")
)
