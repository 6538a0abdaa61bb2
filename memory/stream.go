package memory

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/iokit/resource/core"
)

// Stream is a resource handle wrapping an already-open byte stream.
// It is the only single-use variant: exactly one Open call succeeds, every
// later call fails with core.ErrAlreadyOpened. Opened reports true to
// signal this contract to consumers.
//
// The unopened-to-opened transition is guarded, so concurrent callers
// racing to open observe exactly one success.
type Stream struct {
	desc string

	mu       sync.Mutex
	rc       io.ReadCloser
	consumed bool
}

// NewStream creates a resource handing out rc. The description identifies
// where the stream came from in diagnostics; it may be empty.
func NewStream(rc io.ReadCloser, desc string) *Stream {
	return &Stream{rc: rc, desc: desc}
}

// Open returns the wrapped stream on the first call and fails with
// core.ErrAlreadyOpened on every later one. The caller owns the returned
// stream and must close it.
func (r *Stream) Open() (io.ReadCloser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.consumed {
		return nil, fmt.Errorf("open %s: %w", r, core.ErrAlreadyOpened)
	}
	r.consumed = true
	rc := r.rc
	r.rc = nil
	return rc, nil
}

// Exists returns true: the stream is in hand.
func (r *Stream) Exists() bool {
	return true
}

// Readable returns true.
func (r *Stream) Readable() bool {
	return true
}

// Opened returns true: the handle wraps a single-use stream.
func (r *Stream) Opened() bool {
	return true
}

// FileBacked returns false.
func (r *Stream) FileBacked() bool {
	return false
}

// URL fails with core.ErrNoLocator: a raw stream has no addressable identity.
func (r *Stream) URL() (*url.URL, error) {
	return nil, fmt.Errorf("%s: %w", r, core.ErrNoLocator)
}

// URI fails with core.ErrNoLocator.
func (r *Stream) URI() (*url.URL, error) {
	return nil, fmt.Errorf("%s: %w", r, core.ErrNoLocator)
}

// Path fails with core.ErrNotFileBacked.
func (r *Stream) Path() (string, error) {
	return "", fmt.Errorf("%s: %w", r, core.ErrNotFileBacked)
}

// Channel wraps the stream in the generic channel adapter.
// Like Open, it succeeds exactly once.
func (r *Stream) Channel() (core.Channel, error) {
	rc, err := r.Open()
	if err != nil {
		return nil, err
	}
	return core.NewChannel(rc), nil
}

// Size fails: measuring the stream would consume it.
func (r *Stream) Size() (int64, error) {
	return 0, fmt.Errorf("size %s: %w", r, errSizeUnknown)
}

var errSizeUnknown = errors.New("cannot determine size without consuming the stream")

// ModTime fails: a raw stream has no meaningful modification time.
func (r *Stream) ModTime() (time.Time, error) {
	return time.Time{}, fmt.Errorf("modtime %s: %w", r, core.ErrNotExist)
}

// Relative fails with core.ErrNoRelative: a raw stream has no hierarchy.
func (r *Stream) Relative(rel string) (core.Resource, error) {
	return nil, fmt.Errorf("%s: resolve %q: %w", r, rel, core.ErrNoRelative)
}

// Name returns "": a raw stream has no path-like identity.
func (r *Stream) Name() string {
	return ""
}

// String returns a stable description.
func (r *Stream) String() string {
	if r.desc == "" {
		return "stream resource"
	}
	return fmt.Sprintf("stream resource [%s]", r.desc)
}

// Type returns SourceTypeStream.
func (r *Stream) Type() core.SourceType {
	return core.SourceTypeStream
}

// Compile-time interface check.
var _ core.Resource = (*Stream)(nil)
