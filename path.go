package fspath

import (
	"strings"

	cuepath "cuelang.org/go/pkg/path"
)

// ToNativePath rewrites every separator to the native one, collapses runs of
// separators and removes a single trailing separator unless the result is a
// bare root. A leading double separator is kept when the grammar supports UNC
// paths.
//
//	Windows.ToNativePath(`foo/bar\\baz\`) // `foo\bar\baz`
//	POSIX.ToNativePath("/foo//bar/")     // "/foo/bar"
func (g Grammar) ToNativePath(path string) string {
	return g.normalize(path, g.Separator)
}

// normalize is ToNativePath with a caller-chosen output separator.
func (g Grammar) normalize(path string, out byte) string {
	if path == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(path))

	i := 0
	lastWasSep := false
	if g.UNC && len(path) >= 2 && g.isSep(path[0]) && g.isSep(path[1]) {
		b.WriteByte(out)
		b.WriteByte(out)
		i = 2
		lastWasSep = true
	}

	for ; i < len(path); i++ {
		c := path[i]
		if g.isSep(c) {
			if lastWasSep {
				continue
			}
			b.WriteByte(out)
			lastWasSep = true
			continue
		}
		b.WriteByte(c)
		lastWasSep = false
	}

	s := b.String()
	if len(s) > 1 && s[len(s)-1] == out && !g.isBareRoot(s, out) {
		s = s[:len(s)-1]
	}
	return s
}

// isBareRoot reports whether a collapsed path ending in sep is nothing but a
// root: "/", `C:\` or the `\\` UNC prefix.
func (g Grammar) isBareRoot(s string, sep byte) bool {
	switch {
	case len(s) == 1:
		return true
	case g.UNC && len(s) == 2:
		return s[0] == sep && s[1] == sep
	case g.Drives && len(s) == 3:
		return isDriveLetter(s[0]) && s[1] == ':'
	}
	return false
}

// IsAbsolute reports whether path is fully qualified: it starts with "/" under
// POSIX rules, or with a drive and separator (C:\) or a UNC prefix (\\) under
// Windows rules. A Windows path starting with a single separator is relative
// to the current drive and therefore not absolute.
func (g Grammar) IsAbsolute(path string) bool {
	switch _, _, kind := g.splitRoot(path); kind {
	case rootNone:
		// Reserved device names such as NUL have no root.
		return false
	case rootUNC:
		// A share with nothing below it, or a bare server, is still absolute.
		return true
	}
	return cuepath.IsAbs(path, g.pathOS())
}

// rootKind classifies the prefix found by splitRoot.
type rootKind int

const (
	rootNone     rootKind = iota // relative
	rootSep                      // "/" or a Windows current-drive "\"
	rootDrive                    // drive-relative "C:"
	rootDriveAbs                 // "C:\"
	rootUNC                      // "\\server\share"
)

// SplitRoot separates the root of path from the remainder. The root is
// returned in native form ("/", `C:\`, "C:", `\\server\share`); the remainder
// is returned untouched.
func (g Grammar) SplitRoot(path string) (root, rest string) {
	root, rest, _ = g.splitRoot(path)
	return root, rest
}

func (g Grammar) splitRoot(path string) (string, string, rootKind) {
	if path == "" {
		return "", "", rootNone
	}

	if vol := cuepath.VolumeName(path, g.pathOS()); vol != "" {
		rest := path[len(vol):]
		if g.Drives && len(vol) == 2 && vol[1] == ':' {
			if rest != "" && g.isSep(rest[0]) {
				return vol + g.sep(), rest[1:], rootDriveAbs
			}
			return vol, rest, rootDrive
		}
		if g.UNC {
			return g.ToNativePath(vol), rest, rootUNC
		}
	}

	switch {
	case g.UNC && len(path) >= 2 && g.isSep(path[0]) && g.isSep(path[1]):
		// Prefixes VolumeName does not accept: `\\`, `\\server` and shares
		// written with repeated separators.
		server, i := g.nextSegment(path, 2)
		share, i := g.nextSegment(path, i)
		root := g.sep() + g.sep() + server
		if share != "" {
			root += g.sep() + share
		}
		return root, path[i:], rootUNC

	case g.isSep(path[0]):
		return g.sep(), path[1:], rootSep
	}
	return "", path, rootNone
}

// nextSegment skips separators starting at i and returns the segment that
// follows along with the index just past it.
func (g Grammar) nextSegment(path string, i int) (string, int) {
	for i < len(path) && g.isSep(path[i]) {
		i++
	}
	start := i
	for i < len(path) && !g.isSep(path[i]) {
		i++
	}
	return path[start:i], i
}

// Segments returns the non-empty segments of path that follow its root,
// including "." and ".." segments.
func (g Grammar) Segments(path string) []string {
	_, rest := g.SplitRoot(path)
	return strings.FieldsFunc(rest, g.isSepRune)
}

// IsRoot reports whether path consists of a root and nothing else.
func (g Grammar) IsRoot(path string) bool {
	root, rest := g.SplitRoot(g.ToNativePath(path))
	return root != "" && rest == ""
}

// Canonicalize removes empty and "." segments and folds each ".." into the
// segment before it. A ".." with nothing left to remove is kept, so
// "../foo" stays "../foo". The root is preserved exactly. Canonicalize is
// purely lexical and does not follow symbolic links.
func (g Grammar) Canonicalize(path string) string {
	root, rest := g.SplitRoot(path)
	return g.joinRoot(root, g.fold(nil, strings.FieldsFunc(rest, g.isSepRune)))
}

// fold appends segs to kept, dropping "." and resolving "..".
func (g Grammar) fold(kept, segs []string) []string {
	for _, seg := range segs {
		switch seg {
		case "", ".":
		case "..":
			if n := len(kept); n > 0 && kept[n-1] != ".." {
				kept = kept[:n-1]
			} else {
				kept = append(kept, seg)
			}
		default:
			kept = append(kept, seg)
		}
	}
	return kept
}

// joinRoot assembles a native root and segments into a path.
func (g Grammar) joinRoot(root string, segs []string) string {
	joined := strings.Join(segs, g.sep())
	switch {
	case root == "":
		return joined
	case joined == "":
		return root
	case root[len(root)-1] == g.Separator || root[len(root)-1] == ':':
		return root + joined
	default:
		return root + g.sep() + joined
	}
}
