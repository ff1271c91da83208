// Package mcp binds the tool dispatcher to the Model Context Protocol and
// implements the commands that serve and describe it.
package mcp

import (
	"github.com/MakeNowJust/heredoc/v2"
)

var instructions = heredoc.Doc(`
	Tools in this server manage resources on the Skyport cloud platform: apps,
	databases, storage buckets, domains and DNS, disks, virtual machines,
	mail, private networks, environment variables, deployments, settings,
	logs and metrics.

	Every result is JSON. Failed calls report an error code, a message and,
	when available, suggestions on how to fix the call. List operations
	accept page/perPage or offset/limit.
`)
