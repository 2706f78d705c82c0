package fspath

import "strings"

// CreateFileURL converts an absolute path into a file:// URL. Drive paths
// become file:///C:/..., UNC paths become file://server/share/... and POSIX
// paths become file:///.... Paths are not percent-encoded, so every codepoint
// is preserved. Relative paths have no file URL and yield "".
func (g Grammar) CreateFileURL(path string) string {
	if !g.IsAbsolute(path) {
		return ""
	}

	native := g.ToNativePath(path)
	slashed := strings.ReplaceAll(native, g.sep(), "/")

	_, _, kind := g.splitRoot(native)
	switch kind {
	case rootUNC:
		return "file://" + strings.TrimPrefix(slashed, "//")
	case rootDriveAbs:
		return "file:///" + slashed
	default:
		return "file://" + slashed
	}
}
