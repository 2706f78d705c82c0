package cli

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/fspath/realpath"
)

func realpathCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "realpath PATH...",
		Short: "Resolve paths to canonical absolute form, following symbolic links",
		Long: `Resolve each PATH to its canonical absolute form with every symbolic link
replaced by its target. Missing components are kept lexically, and link cycles
stop substitution instead of failing. Results are printed in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := clog.FromContext(ctx)

			r := realpath.New(o.newFS(o.workingDir),
				realpath.WithGrammar(o.grammar),
				realpath.WithLogger(slog.New(log.Handler())),
				realpath.WithMaxLinks(o.maxLinks),
			)

			resolved, err := ResolveAll(ctx, r, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range resolved {
				if _, err := fmt.Fprintln(out, p); err != nil {
					return err
				}
			}
			log.Debug("resolved paths", "count", len(resolved))
			return nil
		},
	}
}

// ResolveAll resolves paths concurrently and returns the results in input
// order. The first error cancels the remaining work.
func ResolveAll(ctx context.Context, r *realpath.Resolver, paths []string) ([]string, error) {
	out := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			resolved, err := r.RealPath(p)
			if err != nil {
				return err
			}
			out[i] = resolved
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
