// Package remote provides a URL-backed implementation of the core.Resource
// contract.
//
// http and https URLs are probed and opened over HTTP: existence via HEAD
// (with a GET fallback for servers that reject HEAD), content via GET,
// size via Content-Length, and modification time via Last-Modified.
// file URLs resolve to the local filesystem and are file-backed.
//
// The contract is synchronous and carries no timeout of its own; callers
// needing one supply a configured client:
//
//	r, err := remote.New("https://example.com/data.json",
//	    remote.WithClient(&http.Client{Timeout: 10 * time.Second}))
package remote

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/iokit/resource/core"
)

// Resource is a resource handle addressed by a URL.
type Resource struct {
	u      *url.URL
	client *http.Client
}

// Option configures resource construction.
type Option func(*Resource)

// WithClient sets the HTTP client used for all network operations.
// Defaults to http.DefaultClient.
func WithClient(c *http.Client) Option {
	return func(r *Resource) {
		r.client = c
	}
}

// New creates a resource for the given URL string.
// The URL is parsed but not contacted; existence checks are deferred to the
// handle's own operations.
func New(rawurl string, opts ...Option) (*Resource, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", rawurl, err)
	}
	return NewURL(u, opts...), nil
}

// NewURL creates a resource for an already-parsed URL.
func NewURL(u *url.URL, opts ...Option) *Resource {
	r := &Resource{u: u, client: http.DefaultClient}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resource) isFile() bool {
	return r.u.Scheme == "file"
}

func (r *Resource) filePath() string {
	return filepath.FromSlash(r.u.Path)
}

// head issues a HEAD request and discards the body.
func (r *Resource) head() (*http.Response, error) {
	resp, err := r.client.Head(r.u.String())
	if err != nil {
		return nil, err
	}
	_ = resp.Body.Close()
	return resp, nil
}

// Open opens an independent stream over the addressed content.
// A missing target (404, 410, or an absent file path) fails with a
// core.ErrNotExist kind; other HTTP failures surface with their status.
func (r *Resource) Open() (io.ReadCloser, error) {
	if r.isFile() {
		info, err := os.Stat(r.filePath())
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("open %s: %w", r, core.ErrNotExist)
			}
			return nil, fmt.Errorf("open %s: %w", r, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("open %s: is a directory: %w", r, core.ErrNotExist)
		}
		f, err := os.Open(r.filePath())
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", r, err)
		}
		return f, nil
	}

	resp, err := r.client.Get(r.u.String())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r, err)
	}
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("open %s: %w", r, core.ErrNotExist)
	default:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("open %s: unexpected status %s", r, resp.Status)
	}
}

// Exists reports whether the addressed target is currently present.
// For HTTP targets a HEAD request answers; servers that reject HEAD are
// probed with a ranged-free GET whose body is discarded immediately.
func (r *Resource) Exists() bool {
	if r.isFile() {
		_, err := os.Stat(r.filePath())
		return err == nil
	}
	resp, err := r.head()
	if err != nil {
		return false
	}
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true
	case resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented:
		return core.ExistsByProbe(r)
	default:
		return false
	}
}

// Readable reports whether a byte stream can currently be opened.
// File URLs denoting directories exist but are not readable as bytes.
func (r *Resource) Readable() bool {
	if r.isFile() {
		info, err := os.Stat(r.filePath())
		return err == nil && !info.IsDir()
	}
	return r.Exists()
}

// Opened returns false: URL resources are re-openable.
func (r *Resource) Opened() bool {
	return false
}

// FileBacked reports whether the URL resolves to a local path (file scheme).
func (r *Resource) FileBacked() bool {
	return r.isFile()
}

// URL returns a copy of the locator URL.
func (r *Resource) URL() (*url.URL, error) {
	u := *r.u
	return &u, nil
}

// URI returns the normalized URI form of the locator.
func (r *Resource) URI() (*url.URL, error) {
	return core.DeriveURI(r.u)
}

// Path returns the local filesystem path for file URLs.
// It fails with core.ErrNotFileBacked for network URLs and with
// core.ErrNotExist when the file is currently absent.
func (r *Resource) Path() (string, error) {
	if !r.isFile() {
		return "", fmt.Errorf("%s: %w", r, core.ErrNotFileBacked)
	}
	if _, err := os.Stat(r.filePath()); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", r, core.ErrNotExist)
		}
		return "", fmt.Errorf("%s: %w", r, err)
	}
	return r.filePath(), nil
}

// Channel returns a readable channel over the addressed content.
func (r *Resource) Channel() (core.Channel, error) {
	rc, err := r.Open()
	if err != nil {
		return nil, err
	}
	return core.NewChannel(rc), nil
}

// Size returns the content length in bytes.
// HTTP targets answer from Content-Length when the server provides it and
// fall back to transferring and counting the content otherwise.
func (r *Resource) Size() (int64, error) {
	if r.isFile() {
		info, err := os.Stat(r.filePath())
		if err != nil {
			if os.IsNotExist(err) {
				return 0, fmt.Errorf("size %s: %w", r, core.ErrNotExist)
			}
			return 0, fmt.Errorf("size %s: %w", r, err)
		}
		return info.Size(), nil
	}

	resp, err := r.head()
	if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 && resp.ContentLength >= 0 {
		return resp.ContentLength, nil
	}
	n, err := core.SizeByRead(r)
	if err != nil {
		return 0, fmt.Errorf("size %s: %w", r, err)
	}
	return n, nil
}

// ModTime returns the modification time of the addressed target.
// HTTP targets answer from the Last-Modified header; its absence fails
// rather than reporting a zero-time sentinel.
func (r *Resource) ModTime() (time.Time, error) {
	if r.isFile() {
		info, err := os.Stat(r.filePath())
		if err != nil {
			if os.IsNotExist(err) {
				return time.Time{}, fmt.Errorf("modtime %s: %w", r, core.ErrNotExist)
			}
			return time.Time{}, fmt.Errorf("modtime %s: %w", r, err)
		}
		return info.ModTime(), nil
	}

	resp, err := r.head()
	if err != nil {
		return time.Time{}, fmt.Errorf("modtime %s: %w", r, err)
	}
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return time.Time{}, fmt.Errorf("modtime %s: %w", r, core.ErrNotExist)
	}
	lm := resp.Header.Get("Last-Modified")
	if lm == "" {
		return time.Time{}, fmt.Errorf("modtime %s: no Last-Modified header: %w", r, core.ErrNotExist)
	}
	t, err := http.ParseTime(lm)
	if err != nil {
		return time.Time{}, fmt.Errorf("modtime %s: parse Last-Modified %q: %w", r, lm, err)
	}
	return t, nil
}

// Relative resolves rel against this URL per RFC 3986 reference resolution
// and returns a new, unopened handle sharing the same client. No I/O is
// performed. "." and ".." segments resolve against the URL path; resolution
// is clamped at the authority root, so URL resources never escape it.
func (r *Resource) Relative(rel string) (core.Resource, error) {
	ref, err := url.Parse(rel)
	if err != nil {
		return nil, fmt.Errorf("%s: resolve %q: %w", r, rel, err)
	}
	return &Resource{u: r.u.ResolveReference(ref), client: r.client}, nil
}

// Name returns the last segment of the URL path, or "" when the URL has no
// path-like identity.
func (r *Resource) Name() string {
	if r.u.Path == "" || r.u.Path == "/" {
		return ""
	}
	return path.Base(r.u.Path)
}

// String returns a stable description embedding the locator.
func (r *Resource) String() string {
	return fmt.Sprintf("URL [%s]", r.u)
}

// Type returns SourceTypeRemote.
func (r *Resource) Type() core.SourceType {
	return core.SourceTypeRemote
}

// Compile-time interface check.
var _ core.Resource = (*Resource)(nil)
