// Package realpath resolves paths to their canonical absolute form by
// following symbolic links.
//
// A Resolver walks a path one component at a time, asking a core.LinkReader
// whether each prefix is a symbolic link:
//
//	fsys := billy.NewLocal()
//	resolved, err := realpath.New(fsys).RealPath("build/current/bin")
//
// Relative link targets are interpreted from the directory holding the link,
// and ".." after a substituted link climbs the physical parent. A ".." never
// climbs above the root.
//
// # Missing components
//
// Resolution stops being physical at the first component that does not
// exist. The remaining components are appended lexically, so paths that are
// about to be created resolve as expected.
//
// # Cycles
//
// A link that points at itself resolves to its own path. A link revisited
// with the same remaining components, or more than WithMaxLinks
// substitutions, ends physical resolution the same way a missing component
// does. Cycles are never reported as errors.
//
// # Errors
//
// Filesystem failures other than a missing entry are returned as
// errors.PlatformError values whose context records the offending path.
package realpath
