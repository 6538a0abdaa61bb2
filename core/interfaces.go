package core

import (
	"io"
	"net/url"
	"time"
)

// SourceType represents the physical medium backing a resource.
type SourceType int

const (
	// SourceTypeUnknown indicates the medium is unknown or unspecified.
	SourceTypeUnknown SourceType = iota
	// SourceTypeFile indicates a local filesystem path.
	SourceTypeFile
	// SourceTypeBundle indicates an embedded, read-only bundle (io/fs).
	SourceTypeBundle
	// SourceTypeRemote indicates a network URL.
	SourceTypeRemote
	// SourceTypeMemory indicates an in-memory buffer or virtual filesystem.
	SourceTypeMemory
	// SourceTypeStream indicates an already-open, single-use byte stream.
	SourceTypeStream
)

// String returns a string representation of the SourceType.
func (t SourceType) String() string {
	switch t {
	case SourceTypeFile:
		return "file"
	case SourceTypeBundle:
		return "bundle"
	case SourceTypeRemote:
		return "remote"
	case SourceTypeMemory:
		return "memory"
	case SourceTypeStream:
		return "stream"
	default:
		return "unknown"
	}
}

// ByteSource is the parent capability of Resource: anything that can
// produce a byte stream.
//
// Whether Open may be called more than once is a property of the
// implementation; see Resource.Opened.
type ByteSource interface {
	// Open returns a stream of the underlying content.
	//
	// The returned stream is exclusively owned by the caller, who must
	// close it on all exit paths. Open fails (ErrNotExist kind) if the
	// underlying location does not exist or cannot be opened.
	Open() (io.ReadCloser, error)
}

// Resource is a handle to a named byte-bearing location, independent of the
// physical medium behind it. It represents the location, not the bytes: all
// attributes are computed on demand against the current external state, and
// the handle itself holds no live OS resource between calls.
//
// A Resource is immutable with respect to which location it addresses.
// Every variant MUST honor the contracts documented on each operation so
// that consumers never need to know which variant they hold.
type Resource interface {
	ByteSource

	// Exists reports whether the underlying location is currently present.
	// It never fails: a variant that cannot cheaply determine existence
	// must perform the cheapest correct check it can (e.g. attempt an open
	// and trap the failure), converting any I/O failure into false.
	Exists() bool

	// Readable reports whether a byte stream can currently be opened.
	// It never fails and never returns true when Exists returns false.
	// The default behavior is Exists(); variants with stricter physical
	// constraints (a directory exists but is not readable as bytes) must
	// be stricter. The result is computed fresh on every call.
	Readable() bool

	// Opened reports whether this handle wraps an already-open, single-use
	// byte stream. It is constant per variant: true only for the
	// stream-backed variant, signalling that Open is single-use; false for
	// every re-openable variant.
	Opened() bool

	// FileBacked reports whether the resource maps to a local filesystem
	// path, i.e. whether Path can succeed. Constant per handle.
	FileBacked() bool

	// URL returns the resource's URL-form locator identity.
	// Fails with ErrNoLocator for variants with no URL identity
	// (in-memory buffers, raw streams, virtual filesystem trees).
	URL() (*url.URL, error)

	// URI returns the resource's URI-form locator identity, a normalized
	// form derived from URL. It fails exactly when URL fails.
	URI() (*url.URL, error)

	// Path returns the local filesystem path of the resource.
	// Fails with ErrNotFileBacked when the resource does not resolve to a
	// local path, or with ErrNotExist when it is file-backed but the path
	// is currently absent.
	Path() (string, error)

	// Channel returns a readable channel over the content: sequential
	// reads plus io.WriterTo bulk transfer. The default behavior wraps
	// Open in the generic NewChannel adapter; variants may return a more
	// efficient native channel.
	Channel() (Channel, error)

	// Size returns the content length in bytes. Determining it may require
	// opening the resource; re-openable variants may open, measure, and
	// close transparently (see SizeByRead). Fails (ErrNotExist kind or a
	// plain I/O error) when the size cannot be determined.
	Size() (int64, error)

	// ModTime returns the modification time of the underlying location.
	// Variants with no meaningful modification time fail (ErrNotExist
	// kind) rather than return a zero-time sentinel.
	ModTime() (time.Time, error)

	// Relative resolves rel against this resource's location and returns a
	// new, unopened handle of the same variant family. Resolution is pure
	// path algebra: "." and ".." segments resolve lexically, no I/O is
	// performed, and existence checks are deferred to the new handle's own
	// operations. Fails with ErrNoRelative when the variant has no
	// hierarchical-path semantics, or with ErrEscapesRoot when the variant
	// enforces a root and rel would resolve above it.
	Relative(rel string) (Resource, error)

	// Name returns the last path segment of the resource's identity, or ""
	// for variants without path-like identity. It never fails.
	Name() string

	// String returns a stable, human-readable description suitable for
	// diagnostics, typically embedding the resolved locator. Never fails.
	String() string

	// Type returns the physical medium backing this resource.
	// This allows callers to introspect whether the handle is backed by
	// local disk, an embedded bundle, the network, memory, or a raw stream.
	Type() SourceType
}

// Channel is a readable byte channel: a sequential stream that also
// supports bulk transfer into an io.Writer.
//
// The generic adapter returned by NewChannel satisfies it for any stream;
// variants with a natively transferable representation return their own.
type Channel interface {
	io.ReadCloser
	io.WriterTo
}
