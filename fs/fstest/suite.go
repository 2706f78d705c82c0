// Package fstest provides conformance tests for filesystem providers used
// with path resolution.
//
// The suites check the core contracts that resolution depends on: building
// a directory tree, creating and inspecting symbolic links without following
// them, and resolving the canonical link scenarios with realpath.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (fstest.Provider, string) {
//	        return myprovider.New(), "/work"
//	    })
//	}
package fstest

import (
	"path"
	"slices"
	"testing"

	"github.com/jmgilman/go/fspath/fs/core"
)

// Provider is a filesystem the suites can run against.
type Provider interface {
	core.FS
	core.SymlinkFS
	core.LinkReader
}

// NewFunc returns a fresh filesystem and an absolute, link-free directory
// inside it that the tests may populate. Paths are slash separated.
type NewFunc func(t *testing.T) (Provider, string)

// Config adapts the suite to a provider.
type Config struct {
	// SkipTests lists suite names to skip, such as "SymlinkFS".
	SkipTests []string
}

// TestSuite runs every suite, each against a fresh filesystem.
func TestSuite(t *testing.T, newFS NewFunc) {
	TestSuiteWithConfig(t, newFS, Config{})
}

// TestSuiteWithConfig runs every suite not skipped by config.
func TestSuiteWithConfig(t *testing.T, newFS NewFunc, config Config) {
	suites := []struct {
		name string
		run  func(t *testing.T, fsys Provider, root string)
	}{
		{"TreeFS", TestTreeFS},
		{"SymlinkFS", TestSymlinkFS},
		{"RealPath", TestRealPath},
	}

	for _, s := range suites {
		t.Run(s.name, func(t *testing.T) {
			if slices.Contains(config.SkipTests, s.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			fsys, root := newFS(t)
			s.run(t, fsys, root)
		})
	}
}

// at joins name onto root.
func at(root, name string) string {
	return path.Join(root, name)
}
