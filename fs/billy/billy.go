package billy

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/fspath/fs/core"
)

// FS adapts a billy.Filesystem to the core interfaces. It implements
// core.FS, core.LstatFS, core.SymlinkFS, core.WorkingDirFS and therefore
// core.LinkReader.
type FS struct {
	bfs billy.Filesystem
	typ core.FSType
	cwd string
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	workingDir string
}

// WithWorkingDir fixes the directory reported by Getwd. It must be absolute.
// Without it the local filesystem reports the process working directory and
// the memory filesystem reports "/".
func WithWorkingDir(dir string) Option {
	return func(c *config) {
		c.workingDir = dir
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// NewLocal creates a go-billy-backed view of the host filesystem rooted at
// the filesystem root ("/").
func NewLocal(opts ...Option) *FS {
	cfg := newConfig(opts)
	return &FS{
		bfs: osfs.New("/"),
		typ: core.FSTypeLocal,
		cwd: cfg.workingDir,
	}
}

// NewMemory creates a go-billy-backed in-memory filesystem. The working
// directory is created empty.
func NewMemory(opts ...Option) *FS {
	cfg := newConfig(opts)
	if cfg.workingDir == "" {
		cfg.workingDir = "/"
	}

	bfs := memfs.New()
	_ = bfs.MkdirAll(normalize(cfg.workingDir), 0o755)
	return &FS{
		bfs: bfs,
		typ: core.FSTypeMemory,
		cwd: cfg.workingDir,
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the underlying filesystem type.
func (f *FS) Type() core.FSType {
	return f.typ
}

// normalize converts paths to use forward slashes consistently.
func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (f *FS) Open(name string) (fs.File, error) {
	name = normalize(name)
	file, err := f.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: file, fs: f.bfs, name: name}, nil
}

// Stat returns file metadata for the named file, following symbolic links.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// ReadDir reads the named directory and returns its entries sorted by name.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := f.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	file, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return io.ReadAll(file)
}

// Exists reports whether the named entry exists. Symbolic links are not
// followed, so a dangling link exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Lstat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to the named file, creating it if necessary.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	file, err := f.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, err = file.Write(data)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Mkdir creates a new directory. Unlike MkdirAll, it fails if the entry
// already exists or the parent directory does not.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := f.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := path.Dir(name)
	if parent != "." && parent != "/" {
		if _, err := f.bfs.Stat(parent); err != nil {
			return err
		}
	}
	return f.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory along with any necessary parents.
func (f *FS) MkdirAll(name string, perm fs.FileMode) error {
	return f.bfs.MkdirAll(normalize(name), perm)
}

// Remove removes the named file, symbolic link or empty directory.
func (f *FS) Remove(name string) error {
	return f.bfs.Remove(normalize(name))
}

// RemoveAll removes name and any children it contains. Symbolic links are
// removed themselves and never followed.
func (f *FS) RemoveAll(name string) error {
	name = normalize(name)
	info, err := f.bfs.Lstat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if info.IsDir() {
		entries, err := f.bfs.ReadDir(name)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := f.RemoveAll(path.Join(name, entry.Name())); err != nil {
				return err
			}
		}
	}
	return f.bfs.Remove(name)
}

// Lstat returns file info without following a final symbolic link.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	return f.bfs.Lstat(normalize(name))
}

// Symlink creates a symbolic link named newname pointing to oldname. The
// target is stored as given, apart from separator normalization.
func (f *FS) Symlink(oldname, newname string) error {
	return f.bfs.Symlink(filepath.ToSlash(oldname), normalize(newname))
}

// Readlink returns the stored target of the named symbolic link.
func (f *FS) Readlink(name string) (string, error) {
	return f.bfs.Readlink(normalize(name))
}

// Getwd returns the working directory: the WithWorkingDir value when set,
// otherwise the process working directory for a local filesystem.
func (f *FS) Getwd() (string, error) {
	if f.cwd != "" {
		return f.cwd, nil
	}
	return os.Getwd()
}

// Compile-time interface checks.
var (
	_ core.FS           = (*FS)(nil)
	_ core.LstatFS      = (*FS)(nil)
	_ core.SymlinkFS    = (*FS)(nil)
	_ core.WorkingDirFS = (*FS)(nil)
	_ core.LinkReader   = (*FS)(nil)
)
