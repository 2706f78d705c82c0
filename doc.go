// Package fspath provides lexical operations on filesystem path strings for
// POSIX, macOS and Windows path grammars.
//
// Every operation works on strings alone. Nothing here touches the filesystem
// or follows symbolic links; see the realpath package for that.
//
// # Grammars
//
// A Grammar describes separators, root forms and forbidden file name
// characters. Operations are methods on Grammar, and the package-level
// functions apply the grammar of the running platform:
//
//	fspath.Canonicalize("foo/bar/../baz")            // "foo/baz" on Linux
//	fspath.Windows.Canonicalize(`C:/foo\bar\..\baz`) // `C:\foo\baz` everywhere
//
// # Root forms
//
// A path has exactly one root form: none (relative), "/" (POSIX root), a
// drive ("C:" or `C:\`) or a UNC share (`\\server\share`). Operations never
// change the root form of their input. Output uses only the native
// separator, except that GetDirectory keeps the alternate separator of a
// path written entirely with it.
//
// # Unicode
//
// Only '/', '\', '.' and ':' have meaning. All of them are ASCII, and UTF-8
// never reuses ASCII bytes inside multi-byte sequences, so byte-wise scanning
// cannot split a codepoint. Everything else is copied through untouched.
//
// # Thread Safety
//
// Grammar values are immutable and all operations are pure, so they may be
// used from any number of goroutines.
package fspath
