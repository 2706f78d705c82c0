package cli

import (
	"fmt"
	"strconv"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fspath"
)

func lexicalCmds(o *options) []*cobra.Command {
	return []*cobra.Command{
		unaryCmd(o, "native PATH", "Rewrite PATH with native separators", fspath.Grammar.ToNativePath),
		unaryCmd(o, "canonical PATH", "Remove '.' and '..' segments from PATH", fspath.Grammar.Canonicalize),
		binaryCmd(o, "combine BASE ADDITION", "Join two paths with one separator", fspath.Grammar.Combine),
		binaryCmd(o, "append-dir PATH DIR", "Insert DIR before the final segment of PATH", fspath.Grammar.AppendDirectory),
		binaryCmd(o, "relative PATH BASE", "Express PATH relative to the directory BASE", fspath.Grammar.MakeRelative),
		unaryCmd(o, "ext PATH", "Print the extension of PATH without the dot", fspath.Grammar.GetExtension),
		unaryCmd(o, "name PATH", "Print the final segment of PATH", fspath.Grammar.GetFileName),
		unaryCmd(o, "title PATH", "Print the final segment of PATH without its extension", fspath.Grammar.GetFileTitle),
		unaryCmd(o, "dir PATH", "Print everything before the final segment of PATH", fspath.Grammar.GetDirectory),
		binaryCmd(o, "rename PATH NAME", "Replace the final segment of PATH with NAME", fspath.Grammar.ChangeFileName),
		unaryCmd(o, "url PATH", "Print the file URL of an absolute PATH", fspath.Grammar.CreateFileURL),
		unaryCmd(o, "abs PATH", "Report whether PATH is absolute", func(g fspath.Grammar, path string) string {
			return strconv.FormatBool(g.IsAbsolute(path))
		}),
		validCmd(o),
	}
}

func unaryCmd(o *options, use, short string, op func(fspath.Grammar, string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.print(cmd, args, op(o.grammar, args[0]))
		},
	}
}

func binaryCmd(o *options, use, short string, op func(fspath.Grammar, string, string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.print(cmd, args, op(o.grammar, args[0], args[1]))
		},
	}
}

func validCmd(o *options) *cobra.Command {
	var allowSeparators bool
	cmd := &cobra.Command{
		Use:   "valid NAME",
		Short: "Report whether NAME is a valid file name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := o.grammar.IsValidFileName(args[0], allowSeparators)
			return o.print(cmd, args, strconv.FormatBool(ok))
		},
	}
	cmd.Flags().BoolVar(&allowSeparators, "allow-separators", false, "accept separators inside NAME")
	return cmd
}

func (o *options) print(cmd *cobra.Command, args []string, result string) error {
	clog.FromContext(cmd.Context()).Debug("lexical operation", "command", cmd.Name(), "args", args, "result", result)
	_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
