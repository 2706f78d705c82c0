package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"
)

// TestTreeFS tests the operations used to lay out directory trees: Mkdir,
// MkdirAll, WriteFile, ReadFile, Open, Stat, ReadDir, Exists, Remove and
// RemoveAll.
func TestTreeFS(t *testing.T, filesystem Provider, root string) {
	t.Run("WriteAndRead", func(t *testing.T) {
		testTreeFSWriteAndRead(t, filesystem, root)
	})
	t.Run("Directories", func(t *testing.T) {
		testTreeFSDirectories(t, filesystem, root)
	})
	t.Run("Exists", func(t *testing.T) {
		testTreeFSExists(t, filesystem, root)
	})
	t.Run("Remove", func(t *testing.T) {
		testTreeFSRemove(t, filesystem, root)
	})
}

// testTreeFSWriteAndRead tests WriteFile followed by ReadFile, Open and Stat.
func testTreeFSWriteAndRead(t *testing.T, filesystem Provider, root string) {
	name := at(root, "data.txt")
	content := []byte("test file content")
	if err := filesystem.WriteFile(name, content, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
	}

	data, err := filesystem.ReadFile(name)
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", name, err)
	} else if !bytes.Equal(data, content) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, data, content)
	}

	f, err := filesystem.Open(name)
	if err != nil {
		t.Errorf("Open(%q): got error %v, want nil", name, err)
		return
	}
	defer func() { _ = f.Close() }()

	data, err = io.ReadAll(f)
	if err != nil || !bytes.Equal(data, content) {
		t.Errorf("Open(%q) read: got %q, %v, want %q", name, data, err, content)
	}

	info, err := filesystem.Stat(name)
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", name, err)
		return
	}
	if info.IsDir() || info.Size() != int64(len(content)) {
		t.Errorf("Stat(%q): got dir=%v size=%d, want a %d byte file", name, info.IsDir(), info.Size(), len(content))
	}

	_, err = filesystem.Open(at(root, "nonexistent"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(nonexistent): got error %v, want fs.ErrNotExist", err)
	}
}

// testTreeFSDirectories tests Mkdir, MkdirAll and ReadDir.
func testTreeFSDirectories(t *testing.T, filesystem Provider, root string) {
	dir := at(root, "dir")
	if err := filesystem.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("Mkdir(%q): got error %v, want nil", dir, err)
	}
	if err := filesystem.Mkdir(dir, 0o755); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Mkdir(%q) twice: got error %v, want fs.ErrExist", dir, err)
	}

	nested := at(root, "a/b/c")
	if err := filesystem.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): got error %v, want nil", nested, err)
	}
	if err := filesystem.MkdirAll(nested, 0o755); err != nil {
		t.Errorf("MkdirAll(%q) on existing directory: got error %v, want nil", nested, err)
	}

	info, err := filesystem.Stat(nested)
	if err != nil || !info.IsDir() {
		t.Errorf("Stat(%q): got %v, %v, want a directory", nested, info, err)
	}

	if err := filesystem.WriteFile(at(dir, "one"), nil, 0o644); err != nil {
		t.Fatalf("WriteFile(one): setup failed: %v", err)
	}
	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		t.Errorf("ReadDir(%q): got error %v, want nil", dir, err)
		return
	}
	if len(entries) != 1 || entries[0].Name() != "one" || entries[0].IsDir() {
		t.Errorf("ReadDir(%q): got %v, want a single file named one", dir, entries)
	}
}

// testTreeFSExists tests Exists on files, directories and missing entries.
func testTreeFSExists(t *testing.T, filesystem Provider, root string) {
	file := at(root, "exists.txt")
	if err := filesystem.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", file, err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{file, true},
		{root, true},
		{at(root, "missing"), false},
	}
	for _, tt := range tests {
		exists, err := filesystem.Exists(tt.name)
		if err != nil {
			t.Errorf("Exists(%q): got error %v, want nil", tt.name, err)
			continue
		}
		if exists != tt.want {
			t.Errorf("Exists(%q): got %v, want %v", tt.name, exists, tt.want)
		}
	}
}

// testTreeFSRemove tests Remove and RemoveAll.
func testTreeFSRemove(t *testing.T, filesystem Provider, root string) {
	file := at(root, "gone.txt")
	if err := filesystem.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", file, err)
	}
	if err := filesystem.Remove(file); err != nil {
		t.Errorf("Remove(%q): got error %v, want nil", file, err)
	}
	if _, err := filesystem.Stat(file); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(%q) after Remove: got error %v, want fs.ErrNotExist", file, err)
	}

	tree := at(root, "tree")
	if err := filesystem.MkdirAll(at(tree, "x/y"), 0o755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}
	if err := filesystem.WriteFile(at(tree, "x/y/z.txt"), []byte("z"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}
	if err := filesystem.RemoveAll(tree); err != nil {
		t.Errorf("RemoveAll(%q): got error %v, want nil", tree, err)
	}
	if exists, _ := filesystem.Exists(tree); exists {
		t.Errorf("Exists(%q) after RemoveAll: got true, want false", tree)
	}
	if err := filesystem.RemoveAll(at(root, "never-existed")); err != nil {
		t.Errorf("RemoveAll(never-existed): got error %v, want nil", err)
	}
}
