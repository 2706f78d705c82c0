package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"
)

// TestSymlinkFS tests symlink operations (Symlink, Readlink, Lstat) and the
// promise that Exists and RemoveAll never follow links.
func TestSymlinkFS(t *testing.T, filesystem Provider, root string) {
	t.Run("SymlinkCreate", func(t *testing.T) {
		testSymlinkFSCreate(t, filesystem, root)
	})
	t.Run("ReadlinkVerbatim", func(t *testing.T) {
		testSymlinkFSReadlink(t, filesystem, root)
	})
	t.Run("Lstat", func(t *testing.T) {
		testSymlinkFSLstat(t, filesystem, root)
	})
	t.Run("BrokenSymlink", func(t *testing.T) {
		testSymlinkFSBroken(t, filesystem, root)
	})
	t.Run("SelfReference", func(t *testing.T) {
		testSymlinkFSSelf(t, filesystem, root)
	})
	t.Run("RemoveAllKeepsTarget", func(t *testing.T) {
		testSymlinkFSRemoveAll(t, filesystem, root)
	})
}

// testSymlinkFSCreate tests Symlink() creation and reading through the link.
func testSymlinkFSCreate(t *testing.T, filesystem Provider, root string) {
	targetContent := []byte("target file content")
	if err := filesystem.WriteFile(at(root, "target.txt"), targetContent, 0o644); err != nil {
		t.Fatalf("WriteFile(target.txt): setup failed: %v", err)
	}

	link := at(root, "link.txt")
	if err := filesystem.Symlink("target.txt", link); err != nil {
		t.Errorf("Symlink(target.txt, %q): got error %v, want nil", link, err)
		return
	}

	data, err := filesystem.ReadFile(link)
	if err != nil {
		t.Errorf("ReadFile(%q) through symlink: got error %v, want nil", link, err)
		return
	}
	if !bytes.Equal(data, targetContent) {
		t.Errorf("ReadFile(%q) through symlink: got %q, want %q", link, data, targetContent)
	}

	if err := filesystem.Symlink("target.txt", link); err == nil {
		t.Errorf("Symlink over existing %q: got nil error, want error", link)
	}
}

// testSymlinkFSReadlink tests that Readlink() returns targets exactly as
// stored, relative and absolute alike.
func testSymlinkFSReadlink(t *testing.T, filesystem Provider, root string) {
	if err := filesystem.MkdirAll(at(root, "sub"), 0o755); err != nil {
		t.Fatalf("MkdirAll(sub): setup failed: %v", err)
	}

	targets := map[string]string{
		"rel":  "../sub/file",
		"dot":  ".",
		"abs":  at(root, "sub"),
		"deep": "a/b/c",
	}
	for name, target := range targets {
		link := at(root, "sub/"+name)
		if err := filesystem.Symlink(target, link); err != nil {
			t.Fatalf("Symlink(%q, %q): setup failed: %v", target, link, err)
		}
		got, err := filesystem.Readlink(link)
		if err != nil {
			t.Errorf("Readlink(%q): got error %v, want nil", link, err)
			continue
		}
		if got != target {
			t.Errorf("Readlink(%q): got %q, want %q", link, got, target)
		}
	}

	if err := filesystem.WriteFile(at(root, "plain"), nil, 0o644); err != nil {
		t.Fatalf("WriteFile(plain): setup failed: %v", err)
	}
	if _, err := filesystem.Readlink(at(root, "plain")); err == nil {
		t.Errorf("Readlink(plain) on regular file: got nil error, want error")
	}

	_, err := filesystem.Readlink(at(root, "nonexistent-link"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Readlink(nonexistent-link): got error %v, want fs.ErrNotExist", err)
	}
}

// testSymlinkFSLstat tests that Lstat() describes the link, not its target.
func testSymlinkFSLstat(t *testing.T, filesystem Provider, root string) {
	dir := at(root, "lstat-dir")
	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir, err)
	}
	link := at(root, "lstat-link")
	if err := filesystem.Symlink("lstat-dir", link); err != nil {
		t.Fatalf("Symlink(lstat-dir, %q): setup failed: %v", link, err)
	}

	info, err := filesystem.Lstat(link)
	if err != nil {
		t.Errorf("Lstat(%q): got error %v, want nil", link, err)
		return
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat(%q): mode %v lacks ModeSymlink", link, info.Mode())
	}

	info, err = filesystem.Lstat(dir)
	if err != nil || info.Mode()&fs.ModeSymlink != 0 || !info.IsDir() {
		t.Errorf("Lstat(%q): got %v, %v, want a plain directory", dir, info, err)
	}

	if _, err := filesystem.Lstat(at(root, "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Lstat(missing): got error %v, want fs.ErrNotExist", err)
	}
}

// testSymlinkFSBroken tests links pointing to non-existent targets.
func testSymlinkFSBroken(t *testing.T, filesystem Provider, root string) {
	link := at(root, "broken-link.txt")
	if err := filesystem.Symlink("nonexistent-target.txt", link); err != nil {
		t.Errorf("Symlink(nonexistent-target.txt, %q): got error %v, want nil", link, err)
		return
	}

	exists, err := filesystem.Exists(link)
	if err != nil || !exists {
		t.Errorf("Exists(%q) on broken link: got %v, %v, want true, nil", link, exists, err)
	}

	_, err = filesystem.ReadFile(link)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(%q) through broken symlink: got error %v, want fs.ErrNotExist", link, err)
	}
}

// testSymlinkFSSelf tests that a link to itself can be inspected and removed.
func testSymlinkFSSelf(t *testing.T, filesystem Provider, root string) {
	link := at(root, "self")
	if err := filesystem.Symlink("self", link); err != nil {
		t.Fatalf("Symlink(self, %q): setup failed: %v", link, err)
	}

	exists, err := filesystem.Exists(link)
	if err != nil || !exists {
		t.Errorf("Exists(%q): got %v, %v, want true, nil", link, exists, err)
	}
	if err := filesystem.Remove(link); err != nil {
		t.Errorf("Remove(%q): got error %v, want nil", link, err)
	}
}

// testSymlinkFSRemoveAll tests that RemoveAll() removes a link to a
// directory without touching the directory.
func testSymlinkFSRemoveAll(t *testing.T, filesystem Provider, root string) {
	dir := at(root, "kept")
	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir, err)
	}
	if err := filesystem.WriteFile(at(dir, "file"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}
	link := at(root, "kept-link")
	if err := filesystem.Symlink("kept", link); err != nil {
		t.Fatalf("Symlink(kept, %q): setup failed: %v", link, err)
	}

	if err := filesystem.RemoveAll(link); err != nil {
		t.Errorf("RemoveAll(%q): got error %v, want nil", link, err)
	}
	if exists, _ := filesystem.Exists(link); exists {
		t.Errorf("Exists(%q) after RemoveAll: got true, want false", link)
	}
	if exists, _ := filesystem.Exists(at(dir, "file")); !exists {
		t.Errorf("Exists(%q) after removing link: got false, want true", at(dir, "file"))
	}
}
