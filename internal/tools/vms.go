package tools

import (
	"context"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type vmArgs struct {
	VM string `json:"vm"`
}

var argVM = required("ID of the virtual machine")

func vmsFamily() *Family {
	lifecycle := func(verb, description string, fn func(s *platform.VMService, ctx context.Context, vm string) (any, error)) Operation {
		return Operation{
			ToolName:    verb + "_vm",
			Action:      verb,
			Description: description,
			ToolArgs:    map[string]Arg{"vm": argVM},
			Run: run(func(ctx context.Context, p *platform.Platform, in vmArgs) (any, error) {
				return fn(p.VMs, ctx, in.VM)
			}),
		}
	}

	return &Family{
		Name: "vms",
		Description: heredoc.Doc(`
			Manage virtual machines. Virtual machines live on a separate
			endpoint from the rest of the platform.
		`),
		Operations: []Operation{
			{
				ToolName:    "list_vms",
				Action:      "list",
				Description: "List the virtual machines of the current team",
				ToolArgs:    withPaging(nil),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in pageArgs) (any, error) {
					return p.VMs.List(ctx, &in.Request)
				}),
			},
			{
				ToolName:    "get_vm",
				Action:      "get",
				Description: "Get the details of a virtual machine",
				ToolArgs:    map[string]Arg{"vm": argVM},
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in vmArgs) (any, error) {
					return p.VMs.Get(ctx, in.VM)
				}),
			},
			{
				ToolName:    "create_vm",
				Action:      "create",
				Description: "Create a virtual machine",
				ToolArgs: map[string]Arg{
					"name":    required("Name of the virtual machine"),
					"image":   required("OS image, e.g. ubuntu-24.04"),
					"plan":    optional("Plan of the virtual machine"),
					"region":  optional("Region to create the virtual machine in"),
					"sshKeys": {Description: "IDs of SSH keys to install", Type: TypeArray},
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in platform.CreateVMInput) (any, error) {
					return p.VMs.Create(ctx, in)
				}),
			},
			{
				ToolName:    "delete_vm",
				Action:      "delete",
				Description: "Permanently delete a virtual machine",
				ToolArgs:    map[string]Arg{"vm": argVM},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in vmArgs) (any, error) {
					return p.VMs.Delete(ctx, in.VM)
				}),
			},
			lifecycle("start", "Boot a stopped virtual machine", (*platform.VMService).Start),
			lifecycle("stop", "Shut down a virtual machine", (*platform.VMService).Stop),
			lifecycle("restart", "Reboot a virtual machine", (*platform.VMService).Restart),
		},
	}
}
