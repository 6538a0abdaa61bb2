// Package memory provides in-memory implementations of the core.Resource
// contract: Buffer for byte slices and Stream for wrapping an already-open,
// single-use byte stream.
package memory

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/iokit/resource/core"
)

// Buffer is a resource handle over a byte slice held in memory.
// It always exists, every Open yields an independent reader over the same
// bytes, and it has no name, locator, path, or modification time.
type Buffer struct {
	data []byte
}

// NewBuffer creates a resource over data. The slice is not copied; the
// caller must not mutate it while the resource is in use.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewBufferString creates a resource over the bytes of s.
func NewBufferString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// Open returns an independent reader over the buffered bytes.
func (r *Buffer) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(r.data)), nil
}

// Exists returns true: the buffer is always present.
func (r *Buffer) Exists() bool {
	return true
}

// Readable returns true.
func (r *Buffer) Readable() bool {
	return true
}

// Opened returns false: buffers are re-openable.
func (r *Buffer) Opened() bool {
	return false
}

// FileBacked returns false.
func (r *Buffer) FileBacked() bool {
	return false
}

// URL fails with core.ErrNoLocator: a buffer has no addressable identity.
func (r *Buffer) URL() (*url.URL, error) {
	return nil, fmt.Errorf("%s: %w", r, core.ErrNoLocator)
}

// URI fails with core.ErrNoLocator.
func (r *Buffer) URI() (*url.URL, error) {
	return nil, fmt.Errorf("%s: %w", r, core.ErrNoLocator)
}

// Path fails with core.ErrNotFileBacked.
func (r *Buffer) Path() (string, error) {
	return "", fmt.Errorf("%s: %w", r, core.ErrNotFileBacked)
}

// Channel returns a native channel over the buffered bytes.
// bytes.Reader transfers in bulk without the generic adapter.
func (r *Buffer) Channel() (core.Channel, error) {
	return bufferChannel{bytes.NewReader(r.data)}, nil
}

type bufferChannel struct {
	*bytes.Reader
}

func (bufferChannel) Close() error { return nil }

// Size returns the buffer length.
func (r *Buffer) Size() (int64, error) {
	return int64(len(r.data)), nil
}

// ModTime fails: an in-memory buffer has no meaningful modification time,
// and failing beats silently answering with a sentinel.
func (r *Buffer) ModTime() (time.Time, error) {
	return time.Time{}, fmt.Errorf("modtime %s: %w", r, core.ErrNotExist)
}

// Relative fails with core.ErrNoRelative: a buffer has no hierarchy.
func (r *Buffer) Relative(rel string) (core.Resource, error) {
	return nil, fmt.Errorf("%s: resolve %q: %w", r, rel, core.ErrNoRelative)
}

// Name returns "": a buffer has no path-like identity.
func (r *Buffer) Name() string {
	return ""
}

// String returns a stable description embedding the buffer length.
func (r *Buffer) String() string {
	return fmt.Sprintf("byte buffer [%d bytes]", len(r.data))
}

// Type returns SourceTypeMemory.
func (r *Buffer) Type() core.SourceType {
	return core.SourceTypeMemory
}

// Compile-time interface check.
var _ core.Resource = (*Buffer)(nil)
