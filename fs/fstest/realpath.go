package fstest

import (
	"testing"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/realpath"
)

// TestRealPath resolves the canonical link scenarios through the provider:
// absolute and relative links, a link reaching its parent with "..", a link
// to its own directory, a link to itself and a two-link cycle. Paths below a
// link cycle must resolve without error even where the provider reports ELOOP.
func TestRealPath(t *testing.T, filesystem Provider, root string) {
	resolver := realpath.New(filesystem, realpath.WithGrammar(fspath.POSIX))

	file := at(root, "file")
	if err := filesystem.WriteFile(file, []byte("Hello, world!"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", file, err)
	}
	if err := filesystem.Mkdir(at(root, "dir"), 0o755); err != nil {
		t.Fatalf("Mkdir(dir): setup failed: %v", err)
	}

	links := []struct {
		target string
		link   string
	}{
		{file, "abs"},
		{"file", "rel"},
		{"../file", "dir/up"},
		{".", "dot"},
		{"loop", "loop"},
		{"cycle_b", "cycle_a"},
		{"cycle_a", "cycle_b"},
		{"nowhere/x", "dangling"},
	}
	for _, l := range links {
		if err := filesystem.Symlink(l.target, at(root, l.link)); err != nil {
			t.Fatalf("Symlink(%q, %q): setup failed: %v", l.target, l.link, err)
		}
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"AbsoluteLink", at(root, "abs"), file},
		{"RelativeLink", at(root, "rel"), file},
		{"DotDotLink", at(root, "dir/up"), file},
		{"LinkToDirectory", at(root, "dot"), root},
		{"LinkToDirectoryTwice", at(root, "dot/dot"), root},
		{"LinkToItself", at(root, "loop"), at(root, "loop")},
		{"LinkToItselfWithTail", at(root, "loop/file"), at(root, "loop/file")},
		{"LinkToItselfThenParent", at(root, "loop/../file"), file},
		{"CycleWithTail", at(root, "cycle_a/file"), at(root, "cycle_a/file")},
		{"DanglingLink", at(root, "dangling"), at(root, "nowhere/x")},
		{"MissingTail", at(root, "dir/missing/../file"), at(root, "dir/file")},
		{"PlainFile", file, file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.RealPath(tt.path)
			if err != nil {
				t.Errorf("RealPath(%q): got error %v, want nil", tt.path, err)
				return
			}
			if got != tt.want {
				t.Errorf("RealPath(%q): got %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
