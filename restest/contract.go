package restest

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/iokit/resource/core"
)

// readAll drains a stream and closes it, reporting failures on t.
func readAll(t *testing.T, rc io.ReadCloser) []byte {
	t.Helper()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Errorf("ReadAll(): got error %v, want nil", err)
	}
	if err := rc.Close(); err != nil {
		t.Errorf("Close(): got error %v, want nil", err)
	}
	return data
}

// testExists verifies the resource reports its existing content as present
// and readable.
func testExists(t *testing.T, r core.Resource) {
	if !r.Exists() {
		t.Errorf("%s: Exists() = false, want true", r)
	}
	if !r.Readable() {
		t.Errorf("%s: Readable() = false, want true", r)
	}
}

// testReadableImpliesExists verifies Readable never contradicts Exists.
func testReadableImpliesExists(t *testing.T, r core.Resource) {
	if r.Readable() && !r.Exists() {
		t.Errorf("%s: Readable() = true while Exists() = false", r)
	}
}

// testOpened verifies Opened matches the variant's stream contract.
func testOpened(t *testing.T, r core.Resource, config Config) {
	if got := r.Opened(); got != config.SingleUse {
		t.Errorf("%s: Opened() = %v, want %v", r, got, config.SingleUse)
	}
}

// testOpen verifies a single open reads the full content.
func testOpen(t *testing.T, r core.Resource, want []byte) {
	rc, err := r.Open()
	if err != nil {
		t.Fatalf("%s: Open(): got error %v, want nil", r, err)
	}
	if got := readAll(t, rc); !bytes.Equal(got, want) {
		t.Errorf("%s: Open() content = %q, want %q", r, got, want)
	}
}

// testReopen verifies N sequential opens yield independent streams, each
// fully readable from offset zero.
func testReopen(t *testing.T, r core.Resource, want []byte) {
	for i := 0; i < 3; i++ {
		rc, err := r.Open()
		if err != nil {
			t.Fatalf("%s: Open() #%d: got error %v, want nil", r, i+1, err)
		}
		if got := readAll(t, rc); !bytes.Equal(got, want) {
			t.Errorf("%s: Open() #%d content = %q, want %q", r, i+1, got, want)
		}
	}
}

// testSingleUse verifies exactly one open succeeds and later attempts fail
// with ErrAlreadyOpened.
func testSingleUse(t *testing.T, r core.Resource, want []byte) {
	rc, err := r.Open()
	if err != nil {
		t.Fatalf("%s: first Open(): got error %v, want nil", r, err)
	}
	if got := readAll(t, rc); !bytes.Equal(got, want) {
		t.Errorf("%s: first Open() content = %q, want %q", r, got, want)
	}
	if !r.Opened() {
		t.Errorf("%s: Opened() = false after open, want true", r)
	}
	for i := 0; i < 2; i++ {
		if _, err := r.Open(); !errors.Is(err, core.ErrAlreadyOpened) {
			t.Errorf("%s: Open() #%d: got error %v, want ErrAlreadyOpened", r, i+2, err)
		}
	}
}

// testSize verifies Size matches the content length.
func testSize(t *testing.T, r core.Resource, want []byte) {
	n, err := r.Size()
	if err != nil {
		t.Fatalf("%s: Size(): got error %v, want nil", r, err)
	}
	if n != int64(len(want)) {
		t.Errorf("%s: Size() = %d, want %d", r, n, len(want))
	}
}

// testChannel verifies the readable channel transfers the full content.
func testChannel(t *testing.T, r core.Resource, want []byte) {
	ch, err := r.Channel()
	if err != nil {
		t.Fatalf("%s: Channel(): got error %v, want nil", r, err)
	}
	var buf bytes.Buffer
	n, err := ch.WriteTo(&buf)
	if err != nil {
		t.Errorf("%s: WriteTo(): got error %v, want nil", r, err)
	}
	if n != int64(len(want)) {
		t.Errorf("%s: WriteTo() = %d bytes, want %d", r, n, len(want))
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("%s: Channel content = %q, want %q", r, buf.Bytes(), want)
	}
	if err := ch.Close(); err != nil {
		t.Errorf("%s: Channel Close(): got error %v, want nil", r, err)
	}
}

// testLocator verifies URL and URI succeed together or fail together with
// ErrNoLocator.
func testLocator(t *testing.T, r core.Resource, config Config) {
	u, uerr := r.URL()
	uri, ierr := r.URI()
	if config.HasLocator {
		if uerr != nil {
			t.Fatalf("%s: URL(): got error %v, want nil", r, uerr)
		}
		if u == nil || u.String() == "" {
			t.Errorf("%s: URL() = %v, want non-empty", r, u)
		}
		if ierr != nil {
			t.Fatalf("%s: URI(): got error %v, want nil", r, ierr)
		}
		if uri == nil || uri.String() == "" {
			t.Errorf("%s: URI() = %v, want non-empty", r, uri)
		}
		return
	}
	if !errors.Is(uerr, core.ErrNoLocator) {
		t.Errorf("%s: URL(): got error %v, want ErrNoLocator", r, uerr)
	}
	if !errors.Is(ierr, core.ErrNoLocator) {
		t.Errorf("%s: URI(): got error %v, want ErrNoLocator", r, ierr)
	}
}

// testPathHandle verifies Path succeeds for file-backed variants and fails
// with ErrNotFileBacked otherwise, consistently with FileBacked.
func testPathHandle(t *testing.T, r core.Resource, config Config) {
	if got := r.FileBacked(); got != config.HasPath {
		t.Errorf("%s: FileBacked() = %v, want %v", r, got, config.HasPath)
	}
	p, err := r.Path()
	if config.HasPath {
		if err != nil {
			t.Fatalf("%s: Path(): got error %v, want nil", r, err)
		}
		if p == "" {
			t.Errorf("%s: Path() = %q, want non-empty", r, p)
		}
		return
	}
	if !errors.Is(err, core.ErrNotFileBacked) {
		t.Errorf("%s: Path(): got error %v, want ErrNotFileBacked", r, err)
	}
}

// testRelative verifies relative resolution is lazy and idempotent in
// shape: resolving the same path twice yields handles with equal
// descriptions, without the sibling needing to exist.
func testRelative(t *testing.T, r core.Resource, config Config) {
	first, err := r.Relative("conformance-sibling.bin")
	if !config.HasRelative {
		if !errors.Is(err, core.ErrNoRelative) {
			t.Errorf("%s: Relative(): got error %v, want ErrNoRelative", r, err)
		}
		return
	}
	if err != nil {
		t.Fatalf("%s: Relative(): got error %v, want nil", r, err)
	}
	second, err := r.Relative("conformance-sibling.bin")
	if err != nil {
		t.Fatalf("%s: Relative() #2: got error %v, want nil", r, err)
	}
	if first.String() != second.String() {
		t.Errorf("%s: Relative() descriptions differ: %q vs %q", r, first, second)
	}
	if first.String() == r.String() {
		t.Errorf("%s: Relative() description equals parent's: %q", r, first)
	}
	// The sibling was never created; the handle must be lazy.
	if first.Exists() {
		t.Errorf("%s: Relative() handle %s exists, want deferred non-existence", r, first)
	}
	if first.Readable() {
		t.Errorf("%s: Relative() handle %s readable while absent", r, first)
	}
}

// testModTime verifies ModTime succeeds with a real time or fails, per the
// variant's capability.
func testModTime(t *testing.T, r core.Resource, config Config) {
	mt, err := r.ModTime()
	if config.HasModTime {
		if err != nil {
			t.Fatalf("%s: ModTime(): got error %v, want nil", r, err)
		}
		if mt.IsZero() {
			t.Errorf("%s: ModTime() = zero time, want real time", r)
		}
		return
	}
	if err == nil {
		t.Errorf("%s: ModTime() = %v, want error for variant without mod time", r, mt)
	}
}

// testDescription verifies the description is non-empty and stable.
func testDescription(t *testing.T, r core.Resource) {
	desc := r.String()
	if desc == "" {
		t.Error("String() = \"\", want non-empty description")
	}
	if again := r.String(); again != desc {
		t.Errorf("String() unstable: %q then %q", desc, again)
	}
}
