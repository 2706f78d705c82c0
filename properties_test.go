package fspath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertyPaths = map[string][]string{
	"posix": {
		"", "/", "foo", "foo/bar", "/foo/bar/baz.txt", "foo//bar/", "./a/../b",
		"../../x", "/../x", "a/b/c/../../d", "foo/b🙃ar/./b🙃az", "/ŻąłóРсту/🐱/..",
	},
	"windows": {
		"", `C:\`, `C:\foo\bar`, "C:/foo/../bar", `\\srv\share\x\..\y`, `foo\bar/baz`,
		`\rooted\path`, "C:relative", `..\..\x`, `a\b\..\..\..`, `f🙃\b🙃\..\z`,
	},
	"darwin": {
		"", "/", "Foo/bar", "/Users/Me/../me", "./a/../B", "/../x", "f🙃/./B🙃",
	},
}

func grammarsUnderTest() []Grammar {
	return []Grammar{POSIX, Darwin, Windows}
}

func TestProperty_CanonicalizeIdempotent(t *testing.T) {
	for _, g := range grammarsUnderTest() {
		for _, p := range propertyPaths[g.Name] {
			once := g.Canonicalize(p)
			assert.Equal(t, once, g.Canonicalize(once), "%s: Canonicalize(%q)", g.Name, p)
		}
	}
}

func TestProperty_DirectoryAndFileNameRoundTrip(t *testing.T) {
	paths := map[string][]string{
		"posix":   {"foo/bar", "/foo/bar/baz.txt", "foo//bar/b🙃z", "/x"},
		"windows": {`foo\bar`, `C:\foo\bar.txt`, "foo/bar/baz", `\\srv\share\f🙃`, `C:\x`},
		"darwin":  {"Foo/Bar", "/Users/me/Notes.txt", "/x"},
	}

	for _, g := range grammarsUnderTest() {
		for _, p := range paths[g.Name] {
			dir, name := g.GetDirectory(p), g.GetFileName(p)
			require.NotEmpty(t, dir)
			require.NotEmpty(t, name)

			want := g.ToNativePath(p)
			assert.Equal(t, g.Canonicalize(want), g.Canonicalize(dir+g.sep()+name), "%s: %q", g.Name, p)
			assert.Equal(t, want, g.Combine(dir, name), "%s: Combine(GetDirectory, GetFileName) of %q", g.Name, p)
		}
	}
}

func TestProperty_MakeRelativeInverse(t *testing.T) {
	pairs := map[string][][2]string{
		"posix": {
			{"/foo/bar", "/foo/baz"},
			{"/a/b/c", "/a"},
			{"/a", "/a/b/c"},
			{"/", "/x/y"},
			{"/x/y", "/"},
			{"/same", "/same"},
			{"/f🙃/b🙃ar", "/f🙃/b🙃az/q"},
		},
		"darwin": {
			{"/Foo/x", "/foo"},
			{"/foo/Bar", "/foo/bar"},
			{"/a/b", "/A/b/c"},
		},
		"windows": {
			{`C:\foo\bar`, `C:\foo\baz`},
			{`C:\a`, `C:\a\b\c`},
			{`\\srv\share\a\b`, `\\srv\share\c`},
		},
	}

	for _, g := range grammarsUnderTest() {
		for _, pair := range pairs[g.Name] {
			a, b := pair[0], pair[1]
			rel := g.MakeRelative(a, b)
			assert.Equal(t, g.Canonicalize(a), g.Canonicalize(g.Combine(b, rel)),
				"%s: MakeRelative(%q, %q) = %q", g.Name, a, b, rel)
		}
	}
}

func TestProperty_MultiBytePreserved(t *testing.T) {
	const seg = "ŻąłóРстуぬねのはen🍪⟑η∏☉ⴤℹ︎∩₲ ₱⟑♰⫳🐱"

	for _, g := range grammarsUnderTest() {
		p := "a/" + seg + "/" + seg + ".t🙃t"
		outputs := []string{
			g.ToNativePath(p),
			g.Canonicalize(p),
			g.Combine(p, seg),
			g.AppendDirectory(p, seg),
			g.GetFileName(p),
			g.GetFileTitle(p),
			g.ChangeFileName(p, seg),
		}
		for _, out := range outputs {
			assert.Contains(t, out, seg, "%s: %q", g.Name, out)
		}
		assert.Equal(t, "t🙃t", g.GetExtension(p))
	}
}

func TestProperty_OnlyNativeSeparators(t *testing.T) {
	p := `a/b\c//d`
	for _, out := range []string{
		Windows.ToNativePath(p),
		Windows.Canonicalize(p),
		Windows.Combine(p, "e/f"),
		Windows.AppendDirectory(p, "x"),
		Windows.ChangeFileName(p, "y"),
	} {
		assert.False(t, strings.Contains(out, "/"), "unexpected alternate separator in %q", out)
	}
}

func FuzzCanonicalize(f *testing.F) {
	for _, paths := range propertyPaths {
		for _, p := range paths {
			f.Add(p)
		}
	}

	f.Fuzz(func(t *testing.T, p string) {
		for _, g := range grammarsUnderTest() {
			once := g.Canonicalize(p)
			if twice := g.Canonicalize(once); twice != once {
				t.Errorf("%s: Canonicalize not idempotent for %q: %q then %q", g.Name, p, once, twice)
			}

			native := g.ToNativePath(p)
			if again := g.ToNativePath(native); again != native {
				t.Errorf("%s: ToNativePath not idempotent for %q: %q then %q", g.Name, p, native, again)
			}
		}
	})
}
