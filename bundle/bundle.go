// Package bundle provides an embedded-bundle implementation of the
// core.Resource contract over any io/fs.FS, typically an embed.FS compiled
// into the binary.
//
// Bundle resources carry a synthetic "bundle:" locator, are never
// file-backed, and confine relative resolution to the bundle root. Their
// modification time follows whatever the underlying fs.FS records; embed.FS
// records none, so ModTime fails rather than reporting the zero time.
package bundle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/iokit/resource/core"
)

// Resource is a resource handle inside a read-only bundle.
type Resource struct {
	fsys fs.FS
	name string // root-relative, slash-separated (io/fs form)
}

// New creates a resource for name inside fsys. The name is normalized to
// the root-relative form io/fs expects and is not checked for existence.
func New(fsys fs.FS, name string) *Resource {
	clean := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(name)), "/")
	if clean == "" {
		clean = "."
	}
	return &Resource{fsys: fsys, name: clean}
}

// Open opens an independent stream over the bundled content.
func (r *Resource) Open() (io.ReadCloser, error) {
	info, err := fs.Stat(r.fsys, r.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", r, core.ErrNotExist)
		}
		return nil, fmt.Errorf("open %s: %w", r, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open %s: is a directory: %w", r, core.ErrNotExist)
	}
	f, err := r.fsys.Open(r.name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r, err)
	}
	return f, nil
}

// Exists reports whether the bundle contains the name.
func (r *Resource) Exists() bool {
	_, err := fs.Stat(r.fsys, r.name)
	return err == nil
}

// Readable reports whether the name can be opened as a byte stream.
// Bundle directories exist but are not readable as bytes.
func (r *Resource) Readable() bool {
	info, err := fs.Stat(r.fsys, r.name)
	return err == nil && !info.IsDir()
}

// Opened returns false: bundle resources are re-openable.
func (r *Resource) Opened() bool {
	return false
}

// FileBacked returns false: bundled content has no local path.
func (r *Resource) FileBacked() bool {
	return false
}

// URL returns the synthetic bundle: locator for this resource.
// The locator is opaque and stable; it identifies the entry within its
// bundle but does not encode which bundle instance it came from.
func (r *Resource) URL() (*url.URL, error) {
	return &url.URL{Scheme: "bundle", Opaque: r.name}, nil
}

// URI returns the normalized URI form of the bundle: locator.
func (r *Resource) URI() (*url.URL, error) {
	u, err := r.URL()
	if err != nil {
		return nil, err
	}
	return core.DeriveURI(u)
}

// Path fails with core.ErrNotFileBacked: bundles have no local path.
func (r *Resource) Path() (string, error) {
	return "", fmt.Errorf("%s: %w", r, core.ErrNotFileBacked)
}

// Channel returns a readable channel over the bundled content.
func (r *Resource) Channel() (core.Channel, error) {
	rc, err := r.Open()
	if err != nil {
		return nil, err
	}
	return core.NewChannel(rc), nil
}

// Size returns the content length in bytes.
func (r *Resource) Size() (int64, error) {
	info, err := fs.Stat(r.fsys, r.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("size %s: %w", r, core.ErrNotExist)
		}
		return 0, fmt.Errorf("size %s: %w", r, err)
	}
	return info.Size(), nil
}

// ModTime returns the recorded modification time of the bundled entry.
// Bundles that record no time (embed.FS) fail rather than report a
// zero-time sentinel.
func (r *Resource) ModTime() (time.Time, error) {
	info, err := fs.Stat(r.fsys, r.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
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
// returns a new, unopened handle in the same bundle. No I/O is performed.
// A relative path resolving above the bundle root fails with
// core.ErrEscapesRoot.
func (r *Resource) Relative(rel string) (core.Resource, error) {
	joined, escaped := core.RelPath(r.name, filepath.ToSlash(rel))
	if escaped {
		return nil, fmt.Errorf("%s: resolve %q: %w", r, rel, core.ErrEscapesRoot)
	}
	return &Resource{fsys: r.fsys, name: joined}, nil
}

// Name returns the last segment of the bundled name.
func (r *Resource) Name() string {
	if r.name == "" || r.name == "." {
		return ""
	}
	return path.Base(r.name)
}

// String returns a stable description embedding the bundled name.
func (r *Resource) String() string {
	return fmt.Sprintf("bundle resource [%s]", r.name)
}

// Type returns SourceTypeBundle.
func (r *Resource) Type() core.SourceType {
	return core.SourceTypeBundle
}

// Compile-time interface check.
var _ core.Resource = (*Resource)(nil)
