package fspath

import "strings"

// Combine joins base and addition with exactly one native separator and
// normalizes the result with ToNativePath.
//
// Under a grammar with drive letters or UNC shares, an absolute addition
// replaces base entirely. Under POSIX rules a leading separator on addition is
// treated as noise, so Combine("foo/bar/", "/baz/") is "foo/bar/baz".
func (g Grammar) Combine(base, addition string) string {
	if addition == "" {
		return g.ToNativePath(base)
	}
	if base == "" || g.hasVolume(addition) {
		return g.ToNativePath(addition)
	}

	if g.isSep(base[len(base)-1]) {
		base = base[:len(base)-1]
	}
	if g.isSep(addition[0]) {
		addition = addition[1:]
	}
	return g.ToNativePath(base + g.sep() + addition)
}

// hasVolume reports whether path names its own drive or share.
func (g Grammar) hasVolume(path string) bool {
	return (g.Drives || g.UNC) && g.IsAbsolute(path)
}

// AppendDirectory inserts newDir as a segment immediately before the final
// segment of path.
//
//	POSIX.AppendDirectory("/foo/bar", "baz") // "/foo/baz/bar"
func (g Grammar) AppendDirectory(path, newDir string) string {
	if path == "" {
		return g.ToNativePath(newDir)
	}
	if newDir == "" {
		return g.ToNativePath(path)
	}

	p := g.ToNativePath(path)
	i := strings.LastIndexByte(p, g.Separator)
	if i < 0 {
		return g.ToNativePath(newDir + g.sep() + p)
	}
	return g.ToNativePath(p[:i+1] + newDir + g.sep() + p[i+1:])
}

// MakeRelative expresses path relative to the directory relativeTo. Both are
// expected to be absolute under the same root; when they are not, or when
// their drives or UNC shares differ, path is returned in native form. Equal
// paths produce ".".
//
//	POSIX.MakeRelative("/foo/bar", "/foo/baz") // "../bar"
func (g Grammar) MakeRelative(path, relativeTo string) string {
	if path == "" {
		return ""
	}
	if relativeTo == "" || !g.IsAbsolute(path) || !g.IsAbsolute(relativeTo) {
		return g.ToNativePath(path)
	}

	pathRoot, pathRest := g.SplitRoot(path)
	baseRoot, baseRest := g.SplitRoot(relativeTo)
	if !g.equal(pathRoot, baseRoot) {
		return g.ToNativePath(path)
	}

	pathSegs := g.fold(nil, strings.FieldsFunc(pathRest, g.isSepRune))
	baseSegs := g.fold(nil, strings.FieldsFunc(baseRest, g.isSepRune))

	common := 0
	for common < len(pathSegs) && common < len(baseSegs) && g.equal(pathSegs[common], baseSegs[common]) {
		common++
	}

	out := make([]string, 0, len(baseSegs)-common+len(pathSegs)-common)
	for range baseSegs[common:] {
		out = append(out, "..")
	}
	out = append(out, pathSegs[common:]...)
	if len(out) == 0 {
		return "."
	}
	return strings.Join(out, g.sep())
}
