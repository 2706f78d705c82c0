package core

import (
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the host filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem surface used to build and inspect directory trees
// around path resolution. FS embeds fs.FS for stdlib compatibility.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)

	// Stat returns file metadata, following symbolic links.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory sorted by name.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether an entry with the given name exists. A dangling
	// or self-referencing symbolic link exists.
	//
	// A false result with a non-nil error means existence could not be
	// determined, not that the entry is missing.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a new directory. If it already exists, Mkdir returns an
	// error matching ErrExist.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any necessary parents.
	// If path is already a directory, MkdirAll does nothing.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines removal operations.
type ManageFS interface {
	// Remove removes the named file, symbolic link or empty directory.
	Remove(name string) error

	// RemoveAll removes path and any children it contains. Symbolic links
	// are removed, never followed. A missing path is not an error.
	RemoveAll(path string) error
}

// LstatFS reports on an entry without following a final symbolic link.
//
// Use type assertion to check if a filesystem supports it:
//
//	if lfs, ok := filesystem.(LstatFS); ok {
//	    info, err := lfs.Lstat("link")
//	}
type LstatFS interface {
	// Lstat returns file info without following symbolic links.
	// If the file is a symbolic link, the returned FileInfo describes
	// the symbolic link itself, not the file it points to.
	Lstat(name string) (fs.FileInfo, error)
}

// SymlinkFS defines symbolic link operations.
//
// Use type assertion to check if a filesystem supports symlink operations:
//
//	if sfs, ok := filesystem.(SymlinkFS); ok {
//	    err := sfs.Symlink("target", "linkname")
//	}
type SymlinkFS interface {
	// Symlink creates a symbolic link named newname pointing to oldname.
	// If newname already exists, Symlink returns an error.
	//
	// The oldname path is not validated; it is stored as-is in the symlink.
	// Broken symbolic links are valid and detectable via Lstat.
	Symlink(oldname, newname string) error

	// Readlink returns the stored target of the named symbolic link,
	// exactly as it was written. If the entry is not a symbolic link,
	// Readlink returns an error.
	Readlink(name string) (string, error)
}

// WorkingDirFS exposes the directory relative paths are resolved against.
type WorkingDirFS interface {
	// Getwd returns an absolute path naming the working directory.
	Getwd() (string, error)
}

// LinkReader is everything a real-path resolver needs from a filesystem:
// link detection, link targets and a working directory.
type LinkReader interface {
	LstatFS
	WorkingDirFS

	// Readlink returns the stored target of the named symbolic link.
	Readlink(name string) (string, error)
}
