// Package core defines the uniform resource abstraction: a single
// capability contract for reading bytes, probing metadata, and resolving
// relative paths identically whether the underlying data lives in a
// filesystem file, an embedded bundle, a network URL, an in-memory buffer,
// or an already-open byte stream.
//
// This package contains the contract and its shared derived behavior only.
// Concrete implementations are provided by separate variant packages:
//
//   - github.com/iokit/resource/file - local and billy-backed filesystems
//   - github.com/iokit/resource/bundle - embedded io/fs bundles
//   - github.com/iokit/resource/remote - URL-backed resources
//   - github.com/iokit/resource/memory - byte buffers and raw streams
//
// # Design Philosophy
//
//   - Zero dependencies: only the Go standard library
//   - One contract, many media: every variant honors the same documented
//     semantics, so consumers never branch on the concrete type
//   - Composition over inheritance: shared default behavior lives in helper
//     functions (NewChannel, DeriveURI, ExistsByProbe, SizeByRead, RelPath)
//     that variants delegate to
//   - Sentinel errors: failure kinds are package-level sentinels checked
//     with errors.Is, wrapped with context at the failure site
//
// # The Contract
//
// Resource embeds ByteSource, the parent capability exposing exactly one
// operation: obtain a byte stream. On top of it the contract adds metadata
// probes (Exists, Readable, Size, ModTime), locator identities (URL, URI,
// Path, Name), relative resolution (Relative), and diagnostics (String).
//
// Probes never fail: Exists and Readable convert I/O failures into false,
// and Readable never returns true when Exists returns false.
//
// # Single-Use vs Re-Openable
//
// Every variant is re-openable - each Open call yields an independent
// stream - except the stream-backed variant, which wraps an
// already-consumed, single-use stream. Opened reports which contract a
// handle follows: the single transition from unopened to opened is the only
// state in the whole abstraction, and a second Open on a single-use handle
// fails with ErrAlreadyOpened.
//
// # Relative Resolution
//
// Relative is pure path algebra: it performs no I/O, resolves "." and ".."
// lexically against the directory of the current location, and returns a
// lazy, unopened handle of the same variant family. Variants that enforce a
// root fail with ErrEscapesRoot instead of silently clamping.
//
// # Error Handling
//
// All failures surface synchronously to the caller; this layer performs no
// retry, no suppression, and no logging. A failure on one operation does
// not invalidate the handle for others.
//
//	if _, err := r.URL(); errors.Is(err, core.ErrNoLocator) {
//	    // variant has no URL identity; fall back to r.String()
//	}
//
// # Validating Implementations
//
// The github.com/iokit/resource/restest package provides an importable
// conformance suite that variant packages run against their own types.
package core
