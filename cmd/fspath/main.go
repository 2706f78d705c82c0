package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jmgilman/go/fspath/internal/cli"
)

func main() {
	if err := mainE(); err != nil {
		os.Exit(1)
	}
}

func mainE() error {
	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt)
	defer done()

	cmd := cli.New()
	if err := cmd.ExecuteContext(ctx); err != nil {
		cli.ReportError(cmd, err)
		return err
	}
	return nil
}
