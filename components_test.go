package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExtension(t *testing.T) {
	tests := []struct {
		grammar Grammar
		in      string
		want    string
	}{
		{POSIX, "foo", ""},
		{POSIX, "foo.txt", "txt"},
		{POSIX, "foo.t🙃t", "t🙃t"},
		{POSIX, "foo.", ""},
		{POSIX, "a/b/foo.txt", "txt"},
		{POSIX, "a/b/foo", ""},
		{POSIX, "a.d/foo", ""},
		{POSIX, "archive.tar.gz", "gz"},
		{POSIX, ".bashrc", ""},
		{POSIX, "dir/.config.yaml", "yaml"},
		{Windows, `a\b.d\foo`, ""},
		{Windows, `a\b\foo.txt`, "txt"},
	}

	for _, tt := range tests {
		t.Run(tt.grammar.Name+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.grammar.GetExtension(tt.in))
		})
	}
}

func TestGetFileName(t *testing.T) {
	tests := []struct {
		grammar Grammar
		in      string
		want    string
	}{
		{POSIX, "", ""},
		{POSIX, "foo", "foo"},
		{POSIX, "foo.txt", "foo.txt"},
		{POSIX, "foo/bar/.", "."},
		{POSIX, "foo/bar/baz", "baz"},
		{POSIX, "foo/bar/baz.txt", "baz.txt"},
		{POSIX, "foo/", ""},
		{POSIX, `foo/bar\baz`, `bar\baz`},

		{Windows, "foo/bar/baz.txt", "baz.txt"},
		{Windows, `foo/bar\baz`, "baz"},
		{Windows, `foo\bar\baz.txt`, "baz.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.grammar.Name+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.grammar.GetFileName(tt.in))
		})
	}
}

func TestGetFileTitle(t *testing.T) {
	tests := []struct {
		grammar Grammar
		in      string
		want    string
	}{
		{POSIX, "", ""},
		{POSIX, "foo", "foo"},
		{POSIX, "foo.txt", "foo"},
		{POSIX, "foo/bar/.", ""},
		{POSIX, "foo/bar/..", ""},
		{POSIX, "foo/bar/baz", "baz"},
		{POSIX, "foo/bar/baz.txt", "baz"},
		{POSIX, "archive.tar.gz", "archive.tar"},
		{POSIX, ".bashrc", ".bashrc"},
		{POSIX, "foo.", "foo"},

		{Windows, `foo/bar\baz`, "baz"},
		{Windows, `foo\bar\baz.txt`, "baz"},
	}

	for _, tt := range tests {
		t.Run(tt.grammar.Name+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.grammar.GetFileTitle(tt.in))
		})
	}
}

func TestGetDirectory(t *testing.T) {
	tests := []struct {
		grammar Grammar
		in      string
		want    string
	}{
		{POSIX, "", ""},
		{POSIX, "foo", ""},
		{POSIX, "foo.txt", ""},
		{POSIX, "foo/bar/.", "foo/bar"},
		{POSIX, "foo/bar/baz", "foo/bar"},
		{POSIX, "foo/bar/baz.txt", "foo/bar"},
		{POSIX, "foo//bar", "foo"},
		{POSIX, "/foo", "/"},

		// Paths written with forward slashes only keep them.
		{Windows, "foo/bar/.", "foo/bar"},
		{Windows, "foo/bar/baz", "foo/bar"},
		{Windows, "foo/bar/baz.txt", "foo/bar"},
		{Windows, `foo\bar\baz`, `foo\bar`},
		{Windows, `foo\bar/baz.txt`, `foo\bar`},
		{Windows, `C:\foo`, `C:\`},
		{Windows, `\\srv\share\file`, `\\srv\share`},
	}

	for _, tt := range tests {
		t.Run(tt.grammar.Name+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.grammar.GetDirectory(tt.in))
		})
	}
}

func TestChangeFileName(t *testing.T) {
	tests := []struct {
		grammar Grammar
		path    string
		name    string
		want    string
	}{
		{POSIX, "", "", ""},
		{POSIX, "", "bar", "bar"},
		{POSIX, "bar", "", ""},
		{POSIX, "foo/bar", "", "foo"},
		{POSIX, "foo/", "bar", "foo/bar"},
		{POSIX, "foo/bar", "baz", "foo/baz"},
		{POSIX, "foo//bar", "baz", "foo/baz"},
		{POSIX, "foo//bar.txt", "baz.txt", "foo/baz.txt"},
		{POSIX, "foo//ba🙃r.txt", "ba🙃z.txt", "foo/ba🙃z.txt"},
		{POSIX, "/foo/bar", "baz", "/foo/baz"},
		{POSIX, "/foo", "bar", "/bar"},

		{Windows, "", "bar", "bar"},
		{Windows, "foo/bar", "", "foo"},
		{Windows, "foo/", "bar", `foo\bar`},
		{Windows, "foo/bar", "baz", `foo\baz`},
		{Windows, `foo//bar\foo`, "baz", `foo\bar\baz`},
		{Windows, `\\foo\bar\foo`, "baz", `\\foo\bar\baz`},
		{Windows, `C:\foo`, "bar", `C:\bar`},
		{Windows, "C:foo", "bar", "C:bar"},
		{Windows, "c:foo.txt", "x.md", "c:x.md"},
		{Windows, "C:foo", "", "C:"},
		{Windows, `C:dir\foo`, "bar", `C:dir\bar`},
	}

	for _, tt := range tests {
		t.Run(tt.grammar.Name+"/"+tt.path+"+"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.grammar.ChangeFileName(tt.path, tt.name))
		})
	}
}
