package realpath

import (
	"io/fs"
	"log/slog"
	"strings"
	"syscall"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fs/core"
)

// DefaultMaxLinks bounds the number of symbolic link substitutions made while
// resolving a single path.
const DefaultMaxLinks = 40

// Resolver turns paths into canonical absolute paths with every symbolic link
// replaced by its target. A Resolver holds only immutable configuration and
// is safe for concurrent use.
type Resolver struct {
	fsys     core.LinkReader
	grammar  fspath.Grammar
	logger   *slog.Logger
	maxLinks int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithGrammar sets the path grammar used to split and join paths. The
// default is fspath.Native().
func WithGrammar(g fspath.Grammar) Option {
	return func(r *Resolver) {
		r.grammar = g
	}
}

// WithLogger sets the logger that receives link substitutions and cycle
// stops at debug level. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxLinks sets the substitution bound. Values below one are ignored.
func WithMaxLinks(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxLinks = n
		}
	}
}

// New creates a Resolver reading links through fsys.
func New(fsys core.LinkReader, opts ...Option) *Resolver {
	r := &Resolver{
		fsys:     fsys,
		grammar:  fspath.Native(),
		logger:   slog.New(slog.DiscardHandler),
		maxLinks: DefaultMaxLinks,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RealPath resolves path with a Resolver using default options.
func RealPath(fsys core.LinkReader, path string) (string, error) {
	return New(fsys).RealPath(path)
}

// RealPath returns the canonical absolute form of path with every symbolic
// link replaced by its target.
//
// Relative paths are resolved against the working directory of the
// filesystem. Components that do not exist end physical resolution and the
// rest of the path is appended lexically, so a path need not exist to be
// resolved. Link cycles are not errors: once a link repeats, or after the
// substitution bound, the remaining components are appended lexically.
//
// An empty path yields "". Errors are returned only when the filesystem
// fails for a reason other than a missing entry.
func (r *Resolver) RealPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	abs, err := r.absolute(path)
	if err != nil {
		return "", err
	}

	w := &walk{
		Resolver: r,
		visited:  make(map[string]struct{}),
	}
	w.root, _ = r.grammar.SplitRoot(abs)
	w.cur = w.root
	w.queue = r.grammar.Segments(abs)

	if err := w.run(); err != nil {
		return "", err
	}
	return w.cur, nil
}

// absolute anchors path at the working directory when it is not already
// fully qualified.
func (r *Resolver) absolute(path string) (string, error) {
	g := r.grammar
	if g.IsAbsolute(path) {
		return path, nil
	}

	wd, err := r.fsys.Getwd()
	if err != nil {
		return "", errors.FromFS(err, "failed to determine working directory", path)
	}
	if !g.IsAbsolute(wd) {
		return "", errors.WithContext(
			errors.Newf(errors.CodeInternal, "working directory %q is not absolute", wd),
			"path", path,
		)
	}

	root, rest := g.SplitRoot(path)
	wdRoot, _ := g.SplitRoot(wd)
	wdVolume := volume(g, wdRoot)
	switch {
	case root == "":
		return g.Combine(wd, path), nil
	case root == string(g.Separator):
		// Rooted on the current drive.
		return g.Combine(wdVolume, rest), nil
	case len(wdVolume) >= len(root) && strings.EqualFold(wdVolume[:len(root)], root):
		// Drive-relative on the current drive.
		return g.Combine(wd, rest), nil
	default:
		// Drive-relative on another drive, whose directory is unknown.
		return g.Combine(root+string(g.Separator), rest), nil
	}
}

// volume qualifies a drive-relative root ("C:" becomes `C:\`). Other roots
// are returned unchanged.
func volume(g fspath.Grammar, root string) string {
	if strings.HasSuffix(root, ":") {
		return root + string(g.Separator)
	}
	return root
}

// walk is the state of one RealPath call.
type walk struct {
	*Resolver

	root  string
	kept  []string
	cur   string
	queue []string

	visited map[string]struct{}
	links   int
}

func (w *walk) run() error {
	for len(w.queue) > 0 {
		seg := w.queue[0]
		w.queue = w.queue[1:]

		switch seg {
		case "", ".":
			continue
		case "..":
			w.pop()
			continue
		}

		candidate := w.grammar.Combine(w.cur, seg)
		info, err := w.fsys.Lstat(candidate)
		if err != nil {
			if isMissing(err) {
				w.push(seg)
				w.appendRest()
				return nil
			}
			return errors.FromFS(err, "failed to inspect path component", candidate)
		}

		if info.Mode()&fs.ModeSymlink == 0 {
			w.push(seg)
			continue
		}

		target, err := w.fsys.Readlink(candidate)
		if err != nil {
			return errors.FromFS(err, "failed to read symbolic link", candidate)
		}

		if w.grammar.Canonicalize(w.anchor(target)) == candidate {
			// Nothing below the link can be looked up physically.
			w.logger.Debug("symbolic link points at itself", "link", candidate)
			w.push(seg)
			w.appendRest()
			return nil
		}

		key := candidate + "\x00" + strings.Join(w.queue, "\x00")
		if _, seen := w.visited[key]; seen || w.links >= w.maxLinks {
			w.logger.Debug("symbolic link cycle detected, resolving remainder lexically",
				"link", candidate, "substitutions", w.links)
			w.push(seg)
			w.appendRest()
			return nil
		}
		w.visited[key] = struct{}{}
		w.links++

		w.logger.Debug("following symbolic link", "link", candidate, "target", target)
		w.substitute(target)
	}
	return nil
}

// anchorRoot returns the root a link target restarts from, or "" when the
// target is relative to the directory holding the link.
func (w *walk) anchorRoot(target string) string {
	g := w.grammar
	root, _ := g.SplitRoot(target)
	switch {
	case root == "" || g.IsAbsolute(target):
		return root
	case strings.HasSuffix(root, ":"):
		return root + string(g.Separator)
	default:
		return volume(g, w.root)
	}
}

// anchor returns target as a path, resolved against the current prefix
// when relative.
func (w *walk) anchor(target string) string {
	if root := w.anchorRoot(target); root != "" {
		return w.grammar.Combine(root, strings.Join(w.grammar.Segments(target), string(w.grammar.Separator)))
	}
	return w.grammar.Combine(w.cur, target)
}

// substitute replaces the link being visited with target. Relative targets
// are resolved from the directory holding the link, which is the current
// prefix since the link itself has not been pushed.
func (w *walk) substitute(target string) {
	if root := w.anchorRoot(target); root != "" {
		w.root = root
		w.kept = w.kept[:0]
		w.cur = root
	}

	segs := w.grammar.Segments(target)
	queue := make([]string, 0, len(segs)+len(w.queue))
	queue = append(queue, segs...)
	w.queue = append(queue, w.queue...)
}

func (w *walk) push(seg string) {
	w.kept = append(w.kept, seg)
	w.cur = w.grammar.Combine(w.cur, seg)
}

// pop removes the last physical component. The root is never removed.
func (w *walk) pop() {
	if len(w.kept) == 0 {
		return
	}
	w.kept = w.kept[:len(w.kept)-1]
	w.cur = w.root
	for _, seg := range w.kept {
		w.cur = w.grammar.Combine(w.cur, seg)
	}
}

// appendRest drains the queue without consulting the filesystem.
func (w *walk) appendRest() {
	for _, seg := range w.queue {
		switch seg {
		case "", ".":
		case "..":
			w.pop()
		default:
			w.push(seg)
		}
	}
	w.queue = nil
}

// isMissing reports whether err means the rest of the path cannot be looked
// up physically: the entry is absent, a parent is not a directory, or the
// host filesystem found a link loop in the prefix.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP)
}
