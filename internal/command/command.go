// Package command implements helpers useful for when building cobra commands.
package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyport-cloud/skyport-mcp/internal/config"
	"github.com/skyport-cloud/skyport-mcp/internal/logger"
)

type (
	Preparer func(context.Context) (context.Context, error)

	Runner func(context.Context) error
)

func New(usage, short, long string, fn Runner, p ...Preparer) *cobra.Command {
	return &cobra.Command{
		Use:   usage,
		Short: short,
		Long:  long,
		RunE:  newRunE(fn, p...),
	}
}

var commonPreparers = []Preparer{
	loadConfig,
	initLogger,
}

func newRunE(fn Runner, preparers ...Preparer) func(*cobra.Command, []string) error {
	if fn == nil {
		return nil
	}

	return func(cmd *cobra.Command, _ []string) (err error) {
		ctx := cmd.Context()
		ctx = NewContext(ctx, cmd)

		// run the common preparers
		if ctx, err = prepare(ctx, commonPreparers...); err != nil {
			return
		}

		// run the preparers specific to the command
		if ctx, err = prepare(ctx, preparers...); err != nil {
			return
		}

		return fn(ctx)
	}
}

func prepare(parent context.Context, preparers ...Preparer) (ctx context.Context, err error) {
	ctx = parent

	for _, p := range preparers {
		if ctx, err = p(ctx); err != nil {
			break
		}
	}

	return
}

func loadConfig(ctx context.Context) (context.Context, error) {
	cfg, err := config.Load(FromContext(ctx).Flags())
	if err != nil {
		return nil, err
	}

	return config.NewContext(ctx, cfg), nil
}

// initLogger replaces the logger ctx carries with one at the configured level,
// writing to the command's error stream.
func initLogger(ctx context.Context) (context.Context, error) {
	var (
		cfg = config.FromContext(ctx)
		cmd = FromContext(ctx)
	)

	l := logger.New(cmd.ErrOrStderr(), logger.ParseLevel(cfg.LogLevel))
	l.Debugf("config loaded (file: %q, log level: %s)", cfg.File, l.Level())

	return logger.NewContext(ctx, l), nil
}

// RequireConfig is a Preparer which makes sure the loaded configuration is
// complete, including the API token.
func RequireConfig(ctx context.Context) (context.Context, error) {
	if err := config.FromContext(ctx).Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return ctx, nil
}
