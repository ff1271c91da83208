// Package version implements the version command.
package version

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyport-cloud/skyport-mcp/internal/buildinfo"
	"github.com/skyport-cloud/skyport-mcp/internal/command"
	"github.com/skyport-cloud/skyport-mcp/internal/render"
)

const jsonFlag = "json"

// New initializes and returns a new version Command.
func New() *cobra.Command {
	const (
		short = "Show version information"

		long = `Shows version information for the server itself, including version
number, commit and build date.`
	)

	version := command.New("version", short, long, run)
	version.Args = cobra.NoArgs
	version.Flags().BoolP(jsonFlag, "j", false, "JSON output")

	return version
}

func run(ctx context.Context) (err error) {
	var (
		cmd  = command.FromContext(ctx)
		info = buildinfo.Info()
		out  = cmd.OutOrStdout()
	)

	if asJSON, _ := cmd.Flags().GetBool(jsonFlag); asJSON {
		err = render.JSON(out, info)
	} else {
		_, err = fmt.Fprintln(out, info)
	}

	return
}
