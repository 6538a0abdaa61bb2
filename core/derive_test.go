package core_test

import (
	"bytes"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/iokit/resource/core"
)

// trackingCloser wraps a reader and records whether Close was called.
type trackingCloser struct {
	io.Reader
	closed bool
}

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}

// writerToCloser is a stream that natively supports bulk transfer and
// records whether WriteTo was used.
type writerToCloser struct {
	r         *bytes.Reader
	usedWrite bool
}

func (w *writerToCloser) Read(p []byte) (int, error) { return w.r.Read(p) }
func (w *writerToCloser) Close() error               { return nil }
func (w *writerToCloser) WriteTo(dst io.Writer) (int64, error) {
	w.usedWrite = true
	return w.r.WriteTo(dst)
}

// fakeSource is a ByteSource returning canned data or a canned error.
type fakeSource struct {
	data  []byte
	err   error
	opens int
}

func (s *fakeSource) Open() (io.ReadCloser, error) {
	s.opens++
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

// TestNewChannel_ReadAndClose verifies the generic adapter streams and
// closes the underlying reader.
func TestNewChannel_ReadAndClose(t *testing.T) {
	underlying := &trackingCloser{Reader: strings.NewReader("channel content")}
	ch := core.NewChannel(underlying)

	data, err := io.ReadAll(ch)
	if err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	if string(data) != "channel content" {
		t.Errorf("ReadAll() = %q, want %q", data, "channel content")
	}

	if err := ch.Close(); err != nil {
		t.Errorf("Close(): got error %v, want nil", err)
	}
	if !underlying.closed {
		t.Error("Close() did not close the underlying stream")
	}
}

// TestNewChannel_WriteToFallback verifies WriteTo copies via io.Copy when
// the underlying stream has no native transfer.
func TestNewChannel_WriteToFallback(t *testing.T) {
	ch := core.NewChannel(&trackingCloser{Reader: strings.NewReader("fallback")})

	var buf bytes.Buffer
	n, err := ch.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo(): got error %v, want nil", err)
	}
	if n != int64(len("fallback")) {
		t.Errorf("WriteTo() = %d bytes, want %d", n, len("fallback"))
	}
	if buf.String() != "fallback" {
		t.Errorf("WriteTo() wrote %q, want %q", buf.String(), "fallback")
	}
}

// TestNewChannel_WriteToDelegates verifies WriteTo delegates to a stream
// that already implements io.WriterTo.
func TestNewChannel_WriteToDelegates(t *testing.T) {
	underlying := &writerToCloser{r: bytes.NewReader([]byte("native"))}
	ch := core.NewChannel(underlying)

	var buf bytes.Buffer
	if _, err := ch.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo(): got error %v, want nil", err)
	}
	if !underlying.usedWrite {
		t.Error("WriteTo() did not delegate to the underlying io.WriterTo")
	}
	if buf.String() != "native" {
		t.Errorf("WriteTo() wrote %q, want %q", buf.String(), "native")
	}
}

// TestDeriveURI verifies URI derivation normalizes without mutating the
// original URL.
func TestDeriveURI(t *testing.T) {
	u := &url.URL{Scheme: "file", Path: "/data/app config.yaml"}
	original := u.String()

	uri, err := core.DeriveURI(u)
	if err != nil {
		t.Fatalf("DeriveURI(): got error %v, want nil", err)
	}
	if uri == u {
		t.Error("DeriveURI() returned the original URL, want an independent value")
	}
	if uri.Path != "/data/app config.yaml" {
		t.Errorf("DeriveURI() path = %q, want %q", uri.Path, "/data/app config.yaml")
	}
	if !strings.Contains(uri.String(), "%20") {
		t.Errorf("DeriveURI() = %q, want percent-encoded form", uri.String())
	}
	if u.String() != original {
		t.Errorf("DeriveURI() mutated its input: %q, want %q", u.String(), original)
	}
}

// TestDeriveURI_NilURL verifies a nil URL fails with ErrNoLocator,
// matching the failure mode of the operation it derives from.
func TestDeriveURI_NilURL(t *testing.T) {
	if _, err := core.DeriveURI(nil); !errors.Is(err, core.ErrNoLocator) {
		t.Errorf("DeriveURI(nil): got error %v, want ErrNoLocator", err)
	}
}

// TestExistsByProbe verifies the probe converts any open failure into false
// and closes successful probes.
func TestExistsByProbe(t *testing.T) {
	present := &fakeSource{data: []byte("x")}
	if !core.ExistsByProbe(present) {
		t.Error("ExistsByProbe() = false for openable source, want true")
	}
	if present.opens != 1 {
		t.Errorf("ExistsByProbe() opened %d times, want 1", present.opens)
	}

	absent := &fakeSource{err: errors.New("connection refused")}
	if core.ExistsByProbe(absent) {
		t.Error("ExistsByProbe() = true for failing source, want false")
	}
}

// TestSizeByRead verifies open-measure-close sizing.
func TestSizeByRead(t *testing.T) {
	src := &fakeSource{data: bytes.Repeat([]byte("a"), 1234)}

	n, err := core.SizeByRead(src)
	if err != nil {
		t.Fatalf("SizeByRead(): got error %v, want nil", err)
	}
	if n != 1234 {
		t.Errorf("SizeByRead() = %d, want 1234", n)
	}
}

// TestSizeByRead_OpenFailure verifies open errors propagate.
func TestSizeByRead_OpenFailure(t *testing.T) {
	openErr := errors.New("boom")
	if _, err := core.SizeByRead(&fakeSource{err: openErr}); !errors.Is(err, openErr) {
		t.Errorf("SizeByRead(): got error %v, want %v", err, openErr)
	}
}

// TestRelPath verifies lexical resolution against the directory of the
// current name, including "." and ".." handling and escape detection.
func TestRelPath(t *testing.T) {
	tests := []struct {
		name        string
		base        string
		rel         string
		want        string
		wantEscaped bool
	}{
		{
			name: "sibling",
			base: "conf/app.yaml",
			rel:  "secrets.yaml",
			want: "conf/secrets.yaml",
		},
		{
			name: "child directory",
			base: "conf/app.yaml",
			rel:  "env/prod.yaml",
			want: "conf/env/prod.yaml",
		},
		{
			name: "dot segment",
			base: "conf/app.yaml",
			rel:  "./other.yaml",
			want: "conf/other.yaml",
		},
		{
			name: "parent segment",
			base: "conf/env/prod.yaml",
			rel:  "../base.yaml",
			want: "conf/base.yaml",
		},
		{
			name: "resolves to root",
			base: "conf/app.yaml",
			rel:  "..",
			want: ".",
		},
		{
			name:        "escapes root",
			base:        "app.yaml",
			rel:         "../outside.yaml",
			want:        "../outside.yaml",
			wantEscaped: true,
		},
		{
			name:        "escapes root repeatedly",
			base:        "conf/env/prod.yaml",
			rel:         "../../../../etc/passwd",
			want:        "../../etc/passwd",
			wantEscaped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, escaped := core.RelPath(tt.base, tt.rel)
			if got != tt.want {
				t.Errorf("RelPath(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.want)
			}
			if escaped != tt.wantEscaped {
				t.Errorf("RelPath(%q, %q) escaped = %v, want %v", tt.base, tt.rel, escaped, tt.wantEscaped)
			}
		})
	}
}
