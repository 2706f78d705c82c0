package fspath

import (
	"runtime"
	"strings"

	cuepath "cuelang.org/go/pkg/path"

	"github.com/jmgilman/go/fspath/errors"
)

// Grammar describes the syntax of filesystem paths on one family of platforms.
// Every lexical operation in this package is a method on Grammar, so a single
// engine serves POSIX, macOS and Windows path strings.
//
// Grammar values are immutable and safe to share between goroutines.
type Grammar struct {
	// Name identifies the grammar in logs and configuration.
	Name string

	// Separator is the native separator emitted by every operation.
	Separator byte

	// AltSeparator is a second separator accepted on input, or 0 if none.
	AltSeparator byte

	// Drives enables drive letter prefixes (C:, C:\).
	Drives bool

	// UNC enables network share prefixes (\\server\share).
	UNC bool

	// CaseInsensitive makes MakeRelative compare roots and segments without
	// regard to case.
	CaseInsensitive bool

	// Forbidden lists the characters IsValidFileName rejects.
	Forbidden string

	// NoTrailingDot makes IsValidFileName reject names ending in '.'.
	NoTrailingDot bool

	// os selects the volume rules used for root detection.
	os cuepath.OS
}

var (
	// POSIX is the grammar of Linux and other Unix-like systems.
	POSIX = Grammar{
		Name:      "posix",
		Separator: '/',
		Forbidden: "*\x00",
		os:        cuepath.Unix,
	}

	// Darwin is the POSIX grammar with macOS file name restrictions. Segments
	// compare exactly, as on POSIX.
	Darwin = Grammar{
		Name:      "darwin",
		Separator: '/',
		Forbidden: ":*\x00",
		os:        cuepath.Unix,
	}

	// Windows is the grammar of Win32 paths: backslash separators with forward
	// slashes accepted, drive letters and UNC shares.
	Windows = Grammar{
		Name:            "windows",
		Separator:       '\\',
		AltSeparator:    '/',
		Drives:          true,
		UNC:             true,
		CaseInsensitive: true,
		Forbidden:       ":*?\"<>|\x00",
		NoTrailingDot:   true,
		os:              cuepath.Windows,
	}
)

// native is chosen once per process from the build target.
var native = grammarForOS(runtime.GOOS)

func grammarForOS(goos string) Grammar {
	switch goos {
	case "windows":
		return Windows
	case "darwin", "ios":
		return Darwin
	default:
		return POSIX
	}
}

// Native returns the grammar of the operating system the program runs on.
func Native() Grammar {
	return native
}

// ParseGrammar returns the grammar with the given name. Accepted names are
// "posix" (or "unix", "linux"), "darwin" (or "macos"), "windows" and "native".
func ParseGrammar(name string) (Grammar, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return Native(), nil
	case "posix", "unix", "linux":
		return POSIX, nil
	case "darwin", "macos":
		return Darwin, nil
	case "windows":
		return Windows, nil
	default:
		return Grammar{}, errors.Newf(errors.CodeInvalidInput, "unknown path grammar %q", name)
	}
}

// String returns the grammar name.
func (g Grammar) String() string {
	return g.Name
}

func (g Grammar) isSep(c byte) bool {
	return c == g.Separator || (g.AltSeparator != 0 && c == g.AltSeparator)
}

// isSepRune adapts isSep for strings.FieldsFunc. Separators are ASCII, so a
// multi-byte codepoint can never match.
func (g Grammar) isSepRune(r rune) bool {
	return r < 0x80 && g.isSep(byte(r))
}

// lastSep returns the byte index of the last separator in path, or -1.
func (g Grammar) lastSep(path string) int {
	for i := len(path) - 1; i >= 0; i-- {
		if g.isSep(path[i]) {
			return i
		}
	}
	return -1
}

// pathOS returns the volume rules of the grammar. Grammars built outside this
// package fall back on their Drives and UNC flags.
func (g Grammar) pathOS() cuepath.OS {
	switch {
	case g.os != "":
		return g.os
	case g.Drives || g.UNC:
		return cuepath.Windows
	default:
		return cuepath.Unix
	}
}

func (g Grammar) sep() string {
	return string(g.Separator)
}

func (g Grammar) equal(a, b string) bool {
	if g.CaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

func isDriveLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
