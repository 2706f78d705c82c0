package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fs/core"
)

// run executes the root command built from o and returns stdout and stderr.
func run(t *testing.T, o *options, args ...string) (string, string, error) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	cmd := newRoot(o)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fspath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLexicalCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "native windows",
			args: []string{"-g", "windows", "native", `foo/bar\\baz\`},
			want: `foo\bar\baz`,
		},
		{
			name: "native posix",
			args: []string{"-g", "posix", "native", "/foo//bar/"},
			want: "/foo/bar",
		},
		{
			name: "canonical",
			args: []string{"-g", "posix", "canonical", "/foo/./bar/../baz"},
			want: "/foo/baz",
		},
		{
			name: "combine",
			args: []string{"-g", "posix", "combine", "foo/bar/", "/baz/"},
			want: "foo/bar/baz",
		},
		{
			name: "append-dir",
			args: []string{"-g", "posix", "append-dir", "/foo/bar", "baz"},
			want: "/foo/baz/bar",
		},
		{
			name: "relative",
			args: []string{"-g", "posix", "relative", "/foo/bar", "/foo/baz"},
			want: "../bar",
		},
		{
			name: "ext",
			args: []string{"-g", "posix", "ext", "/src/archive.tar.gz"},
			want: "gz",
		},
		{
			name: "name",
			args: []string{"-g", "posix", "name", "/src/archive.tar.gz"},
			want: "archive.tar.gz",
		},
		{
			name: "title",
			args: []string{"-g", "posix", "title", "/src/archive.tar.gz"},
			want: "archive.tar",
		},
		{
			name: "dir",
			args: []string{"-g", "posix", "dir", "/src/archive.tar.gz"},
			want: "/src",
		},
		{
			name: "rename",
			args: []string{"-g", "windows", "rename", `C:\docs\a.txt`, "b.md"},
			want: `C:\docs\b.md`,
		},
		{
			name: "url drive",
			args: []string{"-g", "windows", "url", `C:\Users\me\notes.txt`},
			want: "file:///C:/Users/me/notes.txt",
		},
		{
			name: "url posix",
			args: []string{"-g", "posix", "url", "/home/me/notes.txt"},
			want: "file:///home/me/notes.txt",
		},
		{
			name: "abs drive",
			args: []string{"-g", "windows", "abs", `C:\x`},
			want: "true",
		},
		{
			name: "abs rooted",
			args: []string{"-g", "windows", "abs", `\x`},
			want: "false",
		},
		{
			name: "valid",
			args: []string{"-g", "posix", "valid", "notes.txt"},
			want: "true",
		},
		{
			name: "valid rejects separators",
			args: []string{"-g", "posix", "valid", "a/b"},
			want: "false",
		},
		{
			name: "valid allows separators",
			args: []string{"-g", "posix", "valid", "--allow-separators", "a/b"},
			want: "true",
		},
		{
			name: "valid trailing dot on windows",
			args: []string{"-g", "windows", "valid", "name."},
			want: "false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, newOptions(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestLexicalCommands_WrongArgCount(t *testing.T) {
	_, _, err := run(t, newOptions(), "combine", "only-one")
	assert.Error(t, err)
}

func TestRoot_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{
			name: "unknown grammar",
			args: []string{"-g", "vms", "native", "a"},
			code: errors.CodeInvalidInput,
		},
		{
			name: "non-positive max links",
			args: []string{"--max-links", "0", "native", "a"},
			code: errors.CodeInvalidInput,
		},
		{
			name: "relative working dir",
			args: []string{"-g", "posix", "-C", "work", "native", "a"},
			code: errors.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, newOptions(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestRoot_Config(t *testing.T) {
	path := writeConfig(t, "grammar: windows\nmax_links: 3\nworking_dir: 'C:\\work'\n")

	t.Run("config values apply", func(t *testing.T) {
		o := newOptions()
		stdout, _, err := run(t, o, "--config", path, "native", "a/b")
		require.NoError(t, err)
		assert.Equal(t, "a\\b\n", stdout)
		assert.Equal(t, 3, o.maxLinks)
		assert.Equal(t, `C:\work`, o.workingDir)
	})

	t.Run("flags override config", func(t *testing.T) {
		o := newOptions()
		stdout, _, err := run(t, o, "--config", path, "-g", "posix", "--max-links", "7", "-C", "/srv", "native", "a\\b")
		require.NoError(t, err)
		assert.Equal(t, "a\\b\n", stdout)
		assert.Equal(t, 7, o.maxLinks)
		assert.Equal(t, "/srv", o.workingDir)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, newOptions(), "--config", filepath.Join(t.TempDir(), "absent.yaml"), "native", "a")
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})

	t.Run("invalid file", func(t *testing.T) {
		bad := writeConfig(t, "grammar: posix\nunknown_key: 1\n")
		_, _, err := run(t, newOptions(), "--config", bad, "native", "a")
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}

func TestRoot_Logging(t *testing.T) {
	fsys := newMemory(t, "/work")
	require.NoError(t, fsys.MkdirAll("/work/dir", 0o755))
	require.NoError(t, fsys.Symlink("/work/dir", "/work/link"))

	t.Run("verbose logs substitutions", func(t *testing.T) {
		o := newOptions()
		o.newFS = func(string) core.LinkReader { return fsys }

		_, stderr, err := run(t, o, "-g", "posix", "-v", "realpath", "/work/link")
		require.NoError(t, err)
		assert.Contains(t, stderr, "following symbolic link")
	})

	t.Run("quiet suppresses debug", func(t *testing.T) {
		o := newOptions()
		o.newFS = func(string) core.LinkReader { return fsys }

		_, stderr, err := run(t, o, "-g", "posix", "-q", "realpath", "/work/link")
		require.NoError(t, err)
		assert.Empty(t, stderr)
	})

	t.Run("config log level", func(t *testing.T) {
		o := newOptions()
		o.newFS = func(string) core.LinkReader { return fsys }
		path := writeConfig(t, "log_level: debug\n")

		_, stderr, err := run(t, o, "-g", "posix", "--config", path, "realpath", "/work/link")
		require.NoError(t, err)
		assert.Contains(t, stderr, "following symbolic link")
	})
}
