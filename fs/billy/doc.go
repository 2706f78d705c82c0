// Package billy provides go-billy-backed filesystems implementing the core
// interfaces, including the core.LinkReader consumed by the real-path
// resolver.
//
// NewLocal wraps go-billy's osfs rooted at "/" and NewMemory wraps memfs:
//
//	fsys := billy.NewLocal()
//	resolved, err := realpath.RealPath(fsys, "build/latest")
//
// # Memory Filesystem
//
// The in-memory filesystem supports symbolic links, which makes it suitable
// for deterministic tests:
//
//	fsys := billy.NewMemory(billy.WithWorkingDir("/work"))
//	_ = fsys.MkdirAll("/work/dir", 0o755)
//	_ = fsys.Symlink("dir", "/work/link")
//
// Exists and RemoveAll never follow symbolic links, so links that point at
// themselves or at missing targets are safe to inspect and delete.
//
// # Thread Safety
//
// FS values are safe for concurrent use by multiple goroutines. File handles
// are not safe for concurrent use.
package billy
