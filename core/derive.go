package core

import (
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
)

// NewChannel wraps an open byte stream in a generic readable channel.
//
// The adapter delegates WriteTo to the underlying stream when it already
// implements io.WriterTo and falls back to io.Copy otherwise. Closing the
// channel closes the underlying stream.
//
// This is the default Channel behavior for variants without a natively
// transferable representation.
func NewChannel(rc io.ReadCloser) Channel {
	return &channel{rc: rc}
}

type channel struct {
	rc io.ReadCloser
}

func (c *channel) Read(p []byte) (int, error) {
	return c.rc.Read(p)
}

func (c *channel) Close() error {
	return c.rc.Close()
}

func (c *channel) WriteTo(w io.Writer) (int64, error) {
	if wt, ok := c.rc.(io.WriterTo); ok {
		return wt.WriteTo(w)
	}
	return io.Copy(w, c.rc)
}

// DeriveURI derives the URI-form identity from a URL-form identity.
// The result is a normalized re-parse of the URL: reserved characters are
// percent-encoded consistently and the original value is left untouched.
//
// A nil URL fails with ErrNoLocator, matching the failure mode of the URL
// operation it derives from.
func DeriveURI(u *url.URL) (*url.URL, error) {
	if u == nil {
		return nil, ErrNoLocator
	}
	uri, err := url.Parse(u.String())
	if err != nil {
		return nil, fmt.Errorf("derive uri from %q: %w", u.String(), err)
	}
	return uri, nil
}

// ExistsByProbe determines existence for sources with no cheaper check by
// attempting an open and trapping the failure. Any error converts to false.
//
// The probe stream is closed immediately; close errors are ignored since the
// open alone answers the question.
func ExistsByProbe(src ByteSource) bool {
	rc, err := src.Open()
	if err != nil {
		return false
	}
	_ = rc.Close()
	return true
}

// SizeByRead measures content length by opening the source, counting the
// bytes, and closing it again. Only re-openable sources should use it.
func SizeByRead(src ByteSource) (n int64, err error) {
	rc, err := src.Open()
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return io.Copy(io.Discard, rc)
}

// RelPath resolves rel against the directory containing name using lexical,
// slash-separated path algebra. No I/O is performed. "." and ".." segments
// resolve during the join.
//
// Both name and the result are root-relative (no leading slash), the form
// io/fs uses. The second return reports whether rel resolved above the root,
// which root-enforcing variants must reject rather than silently clamp.
func RelPath(name, rel string) (string, bool) {
	joined := path.Join(path.Dir(name), rel)
	escaped := joined == ".." || strings.HasPrefix(joined, "../")
	return joined, escaped
}
