package tools

import (
	"context"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type networkArgs struct {
	Network string `json:"network"`
}

var argNetwork = required("ID of the private network")

func networksFamily() *Family {
	return &Family{
		Name:        "networks",
		Description: "Manage private networks connecting apps, databases and virtual machines.",
		Operations: []Operation{
			{
				ToolName:    "list_networks",
				Action:      "list",
				Description: "List the private networks of the current team",
				ToolArgs:    withPaging(nil),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in pageArgs) (any, error) {
					return p.Networks.List(ctx, &in.Request)
				}),
			},
			{
				ToolName:    "get_network",
				Action:      "get",
				Description: "Get the details of a private network",
				ToolArgs:    map[string]Arg{"network": argNetwork},
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in networkArgs) (any, error) {
					return p.Networks.Get(ctx, in.Network)
				}),
			},
			{
				ToolName:    "create_network",
				Action:      "create",
				Description: "Create a private network",
				ToolArgs: map[string]Arg{
					"name":   required("Name of the network"),
					"region": optional("Region of the network"),
					"cidr":   optional("Address range, e.g. 10.10.0.0/16"),
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in platform.CreateNetworkInput) (any, error) {
					return p.Networks.Create(ctx, in)
				}),
			},
			{
				ToolName:    "delete_network",
				Action:      "delete",
				Description: "Delete a private network",
				ToolArgs:    map[string]Arg{"network": argNetwork},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in networkArgs) (any, error) {
					return p.Networks.Delete(ctx, in.Network)
				}),
			},
		},
	}
}
