// Package root implements the root command.
package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/skyport-cloud/skyport-mcp/internal/buildinfo"
	"github.com/skyport-cloud/skyport-mcp/internal/command"
	"github.com/skyport-cloud/skyport-mcp/internal/command/mcp"
	"github.com/skyport-cloud/skyport-mcp/internal/command/version"
	"github.com/skyport-cloud/skyport-mcp/internal/config"
)

// New initializes and returns a reference to a new root command. Without a
// subcommand it serves MCP, like serve.
func New() *cobra.Command {
	const short = "Skyport cloud platform tools over the Model Context Protocol"

	long := heredoc.Doc(`
		skyport-mcp exposes the Skyport cloud platform API as Model Context
		Protocol tools: apps, databases, storage, domains and DNS, disks,
		virtual machines, mail, networks and more.

		Configuration is read from flags, SKYPORT_* environment variables, a
		.env file in the working directory and an optional YAML config file,
		in that order of precedence.

		* Start the server with the serve command, or without a command
		* List the exposed tools with the tools command
	`)

	root := command.New(buildinfo.Name, short, long, mcp.Run, command.RequireConfig)
	root.Args = cobra.NoArgs
	root.SilenceUsage = true
	root.SilenceErrors = true

	config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		mcp.NewServe(),
		mcp.NewTools(),
		version.New(),
	)

	return root
}
