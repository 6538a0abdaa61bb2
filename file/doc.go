// Package file provides a go-billy-backed filesystem implementation of the
// core.Resource contract.
//
// This package wraps go-billy's osfs (local disk) and any other
// billy.Filesystem (typically memfs for tests and virtual trees), providing
// a thin adapter layer that implements core.Resource while maintaining the
// ability to access the underlying billy.Filesystem for go-git integration.
//
// Usage:
//
//	// Resource for a local file
//	r := file.New("/etc/app/config.yaml")
//	rc, err := r.Open()
//
//	// Sibling of the same file, resolved lazily
//	sibling, err := r.Relative("secrets.yaml")
//
// # Virtual Filesystems
//
// For testing or content that never touches disk, wrap any
// billy.Filesystem:
//
//	mfs := memfs.New()
//	r := file.NewIn(mfs, "templates/index.html")
//
// Resources created with NewIn are not file-backed, carry no locator
// identity, and enforce the filesystem root during relative resolution.
//
// # Thread Safety
//
// Resource handles are immutable and safe for concurrent use by multiple
// goroutines; each Open call yields an independent stream.
package file
