package file

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/iokit/resource/core"
)

// Resource is a filesystem-backed resource handle.
// It addresses one path inside a billy.Filesystem and computes all
// attributes on demand; the handle holds no open file between calls.
type Resource struct {
	bfs  billy.Filesystem
	name string // slash-separated; absolute for local, root-relative otherwise
	// local marks resources constructed with New: they map to a real disk
	// path, carry a file:// locator, and resolve relatives without an
	// enforced root.
	local bool
}

// New creates a resource for a path on the local filesystem.
// Relative paths are resolved against the working directory at
// construction time. The path is not checked for existence.
func New(name string) *Resource {
	abs, err := filepath.Abs(name)
	if err != nil {
		abs = filepath.Clean(name)
	}
	return &Resource{
		bfs:   osfs.New("/"),
		name:  filepath.ToSlash(abs),
		local: true,
	}
}

// NewIn creates a resource for name inside an arbitrary billy.Filesystem,
// typically an in-memory memfs. The name is normalized to a root-relative
// path and not checked for existence.
//
// Resources created this way are not file-backed and have no locator
// identity; relative resolution is confined to the filesystem root.
func NewIn(bfs billy.Filesystem, name string) *Resource {
	clean := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(name)), "/")
	return &Resource{bfs: bfs, name: clean}
}

// Unwrap returns the underlying billy.Filesystem.
// This allows passing the filesystem to go-git APIs that require it.
func (r *Resource) Unwrap() billy.Filesystem {
	return r.bfs
}

// Open opens an independent stream over the file contents.
// Opening a missing path or a directory fails with a core.ErrNotExist kind.
func (r *Resource) Open() (io.ReadCloser, error) {
	info, err := r.bfs.Stat(r.name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("open %s: %w", r, core.ErrNotExist)
		}
		return nil, fmt.Errorf("open %s: %w", r, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open %s: is a directory: %w", r, core.ErrNotExist)
	}
	f, err := r.bfs.Open(r.name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r, err)
	}
	return f, nil
}

// Exists reports whether the path is currently present.
func (r *Resource) Exists() bool {
	_, err := r.bfs.Stat(r.name)
	return err == nil
}

// Readable reports whether the path can be opened as a byte stream.
// Directories exist but are not readable as bytes.
func (r *Resource) Readable() bool {
	info, err := r.bfs.Stat(r.name)
	return err == nil && !info.IsDir()
}

// Opened returns false: filesystem resources are re-openable.
func (r *Resource) Opened() bool {
	return false
}

// FileBacked reports whether the resource maps to a real disk path.
// True only for resources created with New.
func (r *Resource) FileBacked() bool {
	return r.local
}

// URL returns the file:// locator for local resources.
// Resources inside an arbitrary billy.Filesystem have no locator identity.
func (r *Resource) URL() (*url.URL, error) {
	if !r.local {
		return nil, fmt.Errorf("%s: %w", r, core.ErrNoLocator)
	}
	return &url.URL{Scheme: "file", Path: r.name}, nil
}

// URI returns the normalized URI form of the file:// locator.
func (r *Resource) URI() (*url.URL, error) {
	u, err := r.URL()
	if err != nil {
		return nil, err
	}
	return core.DeriveURI(u)
}

// Path returns the local filesystem path.
// It fails with core.ErrNotFileBacked for resources created with NewIn and
// with core.ErrNotExist when the path is currently absent.
func (r *Resource) Path() (string, error) {
	if !r.local {
		return "", fmt.Errorf("%s: %w", r, core.ErrNotFileBacked)
	}
	if _, err := r.bfs.Stat(r.name); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", r, core.ErrNotExist)
		}
		return "", fmt.Errorf("%s: %w", r, err)
	}
	return filepath.FromSlash(r.name), nil
}

// Channel returns a readable channel over the file contents.
func (r *Resource) Channel() (core.Channel, error) {
	rc, err := r.Open()
	if err != nil {
		return nil, err
	}
	return core.NewChannel(rc), nil
}

// Size returns the file size in bytes.
func (r *Resource) Size() (int64, error) {
	info, err := r.bfs.Stat(r.name)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("size %s: %w", r, core.ErrNotExist)
		}
		return 0, fmt.Errorf("size %s: %w", r, err)
	}
	return info.Size(), nil
}

// ModTime returns the modification time of the path.
// Filesystems that record no time fail rather than report a zero-time
// sentinel.
func (r *Resource) ModTime() (time.Time, error) {
	info, err := r.bfs.Stat(r.name)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, fmt.Errorf("modtime %s: %w", r, core.ErrNotExist)
		}
		return time.Time{}, fmt.Errorf("modtime %s: %w", r, err)
	}
	if info.ModTime().IsZero() {
		return time.Time{}, fmt.Errorf("modtime %s: no modification time recorded: %w", r, core.ErrNotExist)
	}
	return info.ModTime(), nil
}

// Relative resolves rel against the directory containing this resource and
// returns a new, unopened handle in the same filesystem. No I/O is
// performed; existence checks are deferred to the new handle.
//
// Local resources resolve with plain filepath algebra. Resources inside an
// arbitrary billy.Filesystem are confined to the filesystem root: a
// relative path resolving above it fails with core.ErrEscapesRoot.
func (r *Resource) Relative(rel string) (core.Resource, error) {
	rel = filepath.ToSlash(rel)
	if r.local {
		joined := path.Join(path.Dir(r.name), rel)
		return &Resource{bfs: r.bfs, name: joined, local: true}, nil
	}
	joined, escaped := core.RelPath(r.name, rel)
	if escaped {
		return nil, fmt.Errorf("%s: resolve %q: %w", r, rel, core.ErrEscapesRoot)
	}
	return &Resource{bfs: r.bfs, name: joined}, nil
}

// Name returns the last segment of the path.
func (r *Resource) Name() string {
	if r.name == "" || r.name == "." {
		return ""
	}
	return path.Base(r.name)
}

// String returns a stable description embedding the resolved path.
func (r *Resource) String() string {
	if r.local {
		return fmt.Sprintf("file [%s]", filepath.FromSlash(r.name))
	}
	return fmt.Sprintf("fs resource [%s]", r.name)
}

// Type returns SourceTypeFile for local resources and SourceTypeMemory for
// resources inside an arbitrary (virtual) billy.Filesystem.
func (r *Resource) Type() core.SourceType {
	if r.local {
		return core.SourceTypeFile
	}
	return core.SourceTypeMemory
}

// Compile-time interface check.
var _ core.Resource = (*Resource)(nil)
