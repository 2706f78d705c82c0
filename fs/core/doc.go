// Package core defines the filesystem contracts consumed by path resolution
// and implemented by filesystem providers.
//
// The contracts are small and composable:
//
//   - LstatFS: inspect an entry without following a final symbolic link
//   - SymlinkFS: create symbolic links and read their stored targets
//   - WorkingDirFS: report the directory relative paths start from
//   - LinkReader: LstatFS, Readlink and Getwd together; the collaborator
//     of the real-path resolver
//   - FS: fs.FS plus read, write and removal operations, used to set up and
//     inspect directory trees
//
// Providers signal a missing capability with ErrUnsupported. Missing entries
// are reported with errors matching ErrNotExist so callers can use errors.Is
// regardless of provider:
//
//	info, err := fsys.Lstat(name)
//	if errors.Is(err, core.ErrNotExist) {
//	    // the rest of the path cannot be resolved physically
//	}
//
// This package depends only on the Go standard library.
package core
