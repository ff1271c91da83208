// Package cli implements the command line interface.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"

	"github.com/skyport-cloud/skyport-mcp/internal/command/root"
	"github.com/skyport-cloud/skyport-mcp/internal/logger"
)

// Run runs the command line interface with the given arguments and reports the
// exit code the application should exit with.
func Run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args ...string) int {
	ctx = logger.NewContext(ctx, logger.FromEnv(stderr))

	cmd := root.New()
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	switch _, err := cmd.ExecuteContextC(ctx); {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 127
	case errors.Is(err, context.DeadlineExceeded):
		printError(stderr, err)

		return 126
	default:
		printError(stderr, err)

		return 1
	}
}

func printError(w io.Writer, err error) {
	var b bytes.Buffer

	colors := aurora.NewAurora(isTerminal(w))

	var merr *multierror.Error
	if errors.As(err, &merr) {
		fmt.Fprintln(&b, colors.Red("Error"), "invalid configuration:")
		for _, e := range merr.Errors {
			fmt.Fprintf(&b, "  * %s\n", e)
		}
	} else {
		fmt.Fprintln(&b, colors.Red("Error"), strings.TrimSpace(err.Error()))
	}
	fmt.Fprintln(&b)

	_, _ = b.WriteTo(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}
