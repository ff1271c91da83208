package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/skyport-cloud/skyport-mcp/internal/command"
	"github.com/skyport-cloud/skyport-mcp/internal/config"
	"github.com/skyport-cloud/skyport-mcp/internal/logger"
	"github.com/skyport-cloud/skyport-mcp/internal/metrics"
	"github.com/skyport-cloud/skyport-mcp/internal/sentry"
	"github.com/skyport-cloud/skyport-mcp/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

// NewServe initializes and returns the serve command.
func NewServe() *cobra.Command {
	const (
		short = "Start the MCP server"
		usage = "serve"
	)

	long := heredoc.Doc(`
		Start the MCP server. The stdio transport, the default, reads requests
		from stdin and writes responses to stdout. The http transport serves
		streamable HTTP on /mcp, Prometheus metrics on /metrics and a health
		check on /healthz.

		SKYPORT_API_TOKEN must be set.
	`)

	cmd := command.New(usage, short, long, Run, command.RequireConfig)
	cmd.Args = cobra.NoArgs

	return cmd
}

// Run serves MCP until ctx is done or the client disconnects.
func Run(ctx context.Context) error {
	var (
		cfg = config.FromContext(ctx)
		l   = logger.FromContext(ctx)
		cmd = command.FromContext(ctx)
	)

	if err := sentry.Init(cfg.SentryDSN); err != nil {
		l.Warnf("crash reporting disabled: %v", err)
	}
	defer sentry.Flush(2 * time.Second)

	tp, err := tracing.InitTraceProvider(ctx, l.Level() == logger.Trace, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed initializing tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			l.Warnf("failed flushing spans: %v", err)
		}
	}()

	m := metrics.New()

	d, err := NewDispatcher(cfg, m, l)
	if err != nil {
		return err
	}
	srv := NewServer(d)

	l.Infof("serving %d tools in %s mode over %s", len(d.Tools()), d.Mode(), cfg.Transport)

	switch cfg.Transport {
	case config.TransportHTTP:
		return serveHTTP(ctx, cfg.HTTPAddr, NewRouter(srv, m), l)
	default:
		return serveStdio(ctx, srv, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
}

func serveStdio(ctx context.Context, srv *server.MCPServer, in io.Reader, out, errOut io.Writer) error {
	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(log.New(errOut, "", log.LstdFlags))

	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler, l *logger.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		l.Infof("listening on http://%s%s", addr, endpointPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
