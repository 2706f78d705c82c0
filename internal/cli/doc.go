// Package cli implements the fspath command: one subcommand per lexical path
// operation plus realpath, which resolves symbolic links on the host
// filesystem. Global flags may be preset in a YAML configuration file.
package cli
