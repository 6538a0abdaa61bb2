package bundle_test

import (
	"embed"
	"errors"
	"io"
	"testing"
	"testing/fstest"
	"time"

	"github.com/iokit/resource/bundle"
	"github.com/iokit/resource/core"
	"github.com/iokit/resource/restest"
)

//go:embed testdata
var testdataFS embed.FS

// TestConformance runs the contract suite against an embedded bundle.
// embed.FS records no modification times, so ModTime must fail.
func TestConformance(t *testing.T) {
	restest.TestSuiteWithConfig(t, func() core.Resource {
		return bundle.New(testdataFS, "testdata/payload.bin")
	}, []byte("bundled payload"), restest.Config{
		HasLocator:  true,
		HasRelative: true,
	})
}

// TestNew_Identity verifies name normalization, description, and type.
func TestNew_Identity(t *testing.T) {
	r := bundle.New(testdataFS, "/testdata/./templates/index.html")

	if got := r.Name(); got != "index.html" {
		t.Errorf("Name() = %q, want %q", got, "index.html")
	}
	want := "bundle resource [testdata/templates/index.html]"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := r.Type(); got != core.SourceTypeBundle {
		t.Errorf("Type() = %v, want %v", got, core.SourceTypeBundle)
	}
	if r.FileBacked() {
		t.Error("FileBacked() = true, want false")
	}
}

// TestOpen_Nested verifies reading an entry below the bundle root.
func TestOpen_Nested(t *testing.T) {
	r := bundle.New(testdataFS, "testdata/templates/index.html")

	rc, err := r.Open()
	if err != nil {
		t.Fatalf("Open(): got error %v, want nil", err)
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	if closeErr := rc.Close(); closeErr != nil {
		t.Errorf("Close(): got error %v, want nil", closeErr)
	}
	if string(data) != "hello from the bundle\n" {
		t.Errorf("Open() content = %q, want %q", data, "hello from the bundle\n")
	}
}

// TestURL_Scheme verifies the synthetic bundle: locator.
func TestURL_Scheme(t *testing.T) {
	r := bundle.New(testdataFS, "testdata/payload.bin")

	u, err := r.URL()
	if err != nil {
		t.Fatalf("URL(): got error %v, want nil", err)
	}
	if u.Scheme != "bundle" {
		t.Errorf("URL() scheme = %q, want %q", u.Scheme, "bundle")
	}
	if u.Opaque != "testdata/payload.bin" {
		t.Errorf("URL() opaque = %q, want %q", u.Opaque, "testdata/payload.bin")
	}

	uri, err := r.URI()
	if err != nil {
		t.Fatalf("URI(): got error %v, want nil", err)
	}
	if uri.String() != "bundle:testdata/payload.bin" {
		t.Errorf("URI() = %q, want %q", uri, "bundle:testdata/payload.bin")
	}
}

// TestDirectory verifies bundle directories exist but are not readable.
func TestDirectory(t *testing.T) {
	r := bundle.New(testdataFS, "testdata/templates")

	if !r.Exists() {
		t.Error("Exists() = false for directory, want true")
	}
	if r.Readable() {
		t.Error("Readable() = true for directory, want false")
	}
	if _, err := r.Open(); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Open() on directory: got error %v, want ErrNotExist kind", err)
	}
}

// TestMissing verifies probe and failure behavior for an absent entry.
func TestMissing(t *testing.T) {
	r := bundle.New(testdataFS, "testdata/nope.bin")

	if r.Exists() {
		t.Error("Exists() = true for missing entry, want false")
	}
	if r.Readable() {
		t.Error("Readable() = true for missing entry, want false")
	}
	if _, err := r.Open(); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Open(): got error %v, want ErrNotExist", err)
	}
	if _, err := r.Size(); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Size(): got error %v, want ErrNotExist", err)
	}
}

// TestRelative verifies lazy sibling and parent resolution inside the
// bundle, and rejection of escapes above its root.
func TestRelative(t *testing.T) {
	r := bundle.New(testdataFS, "testdata/templates/index.html")

	sibling, err := r.Relative("../payload.bin")
	if err != nil {
		t.Fatalf("Relative(): got error %v, want nil", err)
	}
	if got := sibling.String(); got != "bundle resource [testdata/payload.bin]" {
		t.Errorf("Relative() description = %q, want %q", got, "bundle resource [testdata/payload.bin]")
	}
	if !sibling.Exists() {
		t.Errorf("Relative() handle %s should resolve to an existing entry", sibling)
	}

	if _, err := r.Relative("../../../outside.html"); !errors.Is(err, core.ErrEscapesRoot) {
		t.Errorf("Relative(): got error %v, want ErrEscapesRoot", err)
	}
}

// TestModTime_Recorded verifies bundles that record times report them.
func TestModTime_Recorded(t *testing.T) {
	stamp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	fsys := fstest.MapFS{
		"assets/logo.svg": &fstest.MapFile{
			Data:    []byte("<svg/>"),
			ModTime: stamp,
		},
	}
	r := bundle.New(fsys, "assets/logo.svg")

	mt, err := r.ModTime()
	if err != nil {
		t.Fatalf("ModTime(): got error %v, want nil", err)
	}
	if !mt.Equal(stamp) {
		t.Errorf("ModTime() = %v, want %v", mt, stamp)
	}
}

// TestModTime_Unrecorded verifies a zero recorded time fails instead of
// surfacing as a sentinel success.
func TestModTime_Unrecorded(t *testing.T) {
	r := bundle.New(testdataFS, "testdata/payload.bin")

	if _, err := r.ModTime(); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("ModTime(): got error %v, want ErrNotExist kind", err)
	}
}
