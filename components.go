package fspath

import "strings"

// GetFileName returns the final segment of path: everything after the last
// separator, or the whole string when there is none. A trailing "." segment
// is returned as ".".
func (g Grammar) GetFileName(path string) string {
	return path[g.lastSep(path)+1:]
}

// GetExtension returns the text after the last '.' of the final segment,
// without the dot. Names without a dot, names ending in a dot ("foo.") and
// dotfiles without a further dot (".bashrc") have no extension.
func (g Grammar) GetExtension(path string) string {
	name := g.GetFileName(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}

// GetFileTitle returns the final segment with its extension removed. A final
// segment made only of dots, such as ".", has an empty title.
func (g Grammar) GetFileTitle(path string) string {
	name := g.GetFileName(path)
	if strings.Trim(name, ".") == "" {
		return ""
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	return name[:i]
}

// GetDirectory returns everything before the final separator, or "" when path
// has no separator. Repeated separators are collapsed. A path written only
// with the alternate separator keeps it; any other path comes back with the
// native separator. A directory that is only a root keeps its separator
// ("/", `C:\`).
func (g Grammar) GetDirectory(path string) string {
	i := g.lastSep(path)
	if i < 0 {
		return ""
	}

	out := g.Separator
	if g.AltSeparator != 0 && strings.IndexByte(path, g.Separator) < 0 {
		out = g.AltSeparator
	}
	return g.normalize(path[:i+1], out)
}

// ChangeFileName replaces the final segment of path with newName. An empty
// newName yields the directory of path; a path without a directory yields
// newName alone. Drive and UNC prefixes stay with the directory, so
// "C:foo" becomes "C:bar".
func (g Grammar) ChangeFileName(path, newName string) string {
	dir := g.GetDirectory(path)
	if dir == "" {
		if root, _, kind := g.splitRoot(path); kind == rootDrive {
			return g.ToNativePath(root + newName)
		}
	}
	if newName == "" {
		return g.ToNativePath(dir)
	}
	if dir == "" {
		return g.ToNativePath(newName)
	}
	return g.ToNativePath(dir + g.sep() + newName)
}
