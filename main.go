package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skyport-cloud/skyport-mcp/internal/cli"
	"github.com/skyport-cloud/skyport-mcp/internal/sentry"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			sentry.Recover(r, os.Stderr)
			sentry.Flush(2 * time.Second)
			os.Exit(1)
		}
	}()

	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return cli.Run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]...)
}
