// Package restest provides a conformance test suite for validating
// implementations of the core.Resource contract.
//
// This package contains test functions that variant packages import and
// execute against their own types to verify they honor the cross-variant
// semantics: existence implying readability, independent re-opens (or
// single-use semantics), locator failure modes, lazy relative resolution,
// and stable descriptions.
//
// The suite validates the contract, not backend-specific behavior. Variants
// differ in which optional capabilities they carry, and the Config declares
// what the variant under test supports.
//
// Example usage:
//
//	func TestConformance(t *testing.T) {
//	    restest.TestSuiteWithConfig(t, func() core.Resource {
//	        return memory.NewBuffer([]byte("payload"))
//	    }, []byte("payload"), restest.Config{})
//	}
package restest

import (
	"testing"

	"github.com/iokit/resource/core"
)

// Config declares the capabilities of the variant under test.
type Config struct {
	// SingleUse indicates the variant wraps an already-open stream:
	// exactly one Open succeeds and Opened reports true.
	SingleUse bool

	// HasLocator indicates URL and URI must succeed.
	// When false, both must fail with core.ErrNoLocator.
	HasLocator bool

	// HasPath indicates Path must succeed with a non-empty local path.
	// When false, Path must fail with core.ErrNotFileBacked.
	HasPath bool

	// HasRelative indicates Relative must resolve lazily.
	// When false, Relative must fail with core.ErrNoRelative.
	HasRelative bool

	// HasModTime indicates ModTime must succeed with a non-zero time.
	// When false, ModTime must fail.
	HasModTime bool

	// SkipTests lists specific test names to skip (for edge cases).
	SkipTests []string
}

// ReopenableConfig returns the configuration for re-openable variants with
// no optional capabilities (in-memory buffers). Capability flags are set by
// the caller as the variant supports them.
func ReopenableConfig() Config {
	return Config{}
}

// SingleUseConfig returns the configuration for the stream-backed,
// single-use variant.
func SingleUseConfig() Config {
	return Config{SingleUse: true}
}

// TestSuite runs all conformance tests against a resource variant.
// The newRes function must return a fresh handle addressing existing
// content equal to want; the suite consumes streams, so single-use variants
// rely on each subtest receiving its own handle.
// Uses ReopenableConfig() by default.
func TestSuite(t *testing.T, newRes func() core.Resource, want []byte) {
	TestSuiteWithConfig(t, newRes, want, ReopenableConfig())
}

// TestSuiteWithConfig runs all conformance tests with capability
// configuration.
func TestSuiteWithConfig(t *testing.T, newRes func() core.Resource, want []byte, config Config) {
	shouldSkip := func(testName string) bool {
		for _, skip := range config.SkipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	run := func(name string, fn func(*testing.T, core.Resource)) {
		t.Run(name, func(t *testing.T) {
			if shouldSkip(name) {
				t.Skip("Skipped by variant configuration")
				return
			}
			fn(t, newRes())
		})
	}

	run("Exists", func(t *testing.T, r core.Resource) {
		testExists(t, r)
	})
	run("ReadableImpliesExists", func(t *testing.T, r core.Resource) {
		testReadableImpliesExists(t, r)
	})
	run("Opened", func(t *testing.T, r core.Resource) {
		testOpened(t, r, config)
	})
	run("Open", func(t *testing.T, r core.Resource) {
		testOpen(t, r, want)
	})
	if config.SingleUse {
		run("SingleUse", func(t *testing.T, r core.Resource) {
			testSingleUse(t, r, want)
		})
	} else {
		run("Reopen", func(t *testing.T, r core.Resource) {
			testReopen(t, r, want)
		})
		run("Size", func(t *testing.T, r core.Resource) {
			testSize(t, r, want)
		})
	}
	run("Channel", func(t *testing.T, r core.Resource) {
		testChannel(t, r, want)
	})
	run("Locator", func(t *testing.T, r core.Resource) {
		testLocator(t, r, config)
	})
	run("PathHandle", func(t *testing.T, r core.Resource) {
		testPathHandle(t, r, config)
	})
	run("Relative", func(t *testing.T, r core.Resource) {
		testRelative(t, r, config)
	})
	run("ModTime", func(t *testing.T, r core.Resource) {
		testModTime(t, r, config)
	})
	run("Description", func(t *testing.T, r core.Resource) {
		testDescription(t, r)
	})
}
