package fspath

import "strings"

// IsValidFileName reports whether name can be used as a file name under the
// grammar. Characters in the grammar's Forbidden set are always rejected.
// When allowSeparators is false both '/' and '\' are rejected too; when it is
// true they divide components and the trailing-dot rule applies to the last
// component once a single trailing separator has been dropped.
func (g Grammar) IsValidFileName(name string, allowSeparators bool) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, g.Forbidden) {
		return false
	}
	if !allowSeparators && strings.ContainsAny(name, `/\`) {
		return false
	}

	if g.NoTrailingDot {
		if allowSeparators && g.isSep(name[len(name)-1]) {
			name = name[:len(name)-1]
		}
		if name != "" && name[len(name)-1] == '.' {
			return false
		}
	}
	return true
}
