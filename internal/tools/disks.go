package tools

import (
	"context"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type appPageArgs struct {
	appArgs
	pageArgs
}

type createDiskArgs struct {
	appArgs
	platform.CreateDiskInput
}

type diskArgs struct {
	appArgs
	Disk string `json:"disk"`
}

type resizeDiskArgs struct {
	diskArgs
	SizeGB int `json:"sizeGb"`
}

var (
	argDisk   = required("ID or name of the disk")
	argSizeGB = Arg{Description: "Size of the disk in GB", Required: true, Type: TypeNumber}
)

func disksFamily() *Family {
	return &Family{
		Name:        "disks",
		Description: "Manage persistent disks attached to apps.",
		Operations: []Operation{
			{
				ToolName:    "list_disks",
				Action:      "list",
				Description: "List the disks of an app",
				ToolArgs:    withPaging(map[string]Arg{"app": argApp}),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in appPageArgs) (any, error) {
					return p.Disks.List(ctx, in.App, &in.Request)
				}),
			},
			{
				ToolName:    "create_disk",
				Action:      "create",
				Description: "Create a disk and attach it to an app",
				ToolArgs: map[string]Arg{
					"app":       argApp,
					"name":      required("Name of the disk"),
					"sizeGb":    argSizeGB,
					"mountPath": optional("Path the disk is mounted at"),
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in createDiskArgs) (any, error) {
					return p.Disks.Create(ctx, in.App, in.CreateDiskInput)
				}),
			},
			{
				ToolName:    "resize_disk",
				Action:      "resize",
				Description: "Grow a disk to a new size",
				ToolArgs: map[string]Arg{
					"app":    argApp,
					"disk":   argDisk,
					"sizeGb": argSizeGB,
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in resizeDiskArgs) (any, error) {
					return p.Disks.Resize(ctx, in.App, in.Disk, in.SizeGB)
				}),
			},
			{
				ToolName:    "delete_disk",
				Action:      "delete",
				Description: "Detach and permanently delete a disk",
				ToolArgs: map[string]Arg{
					"app":  argApp,
					"disk": argDisk,
				},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in diskArgs) (any, error) {
					return p.Disks.Delete(ctx, in.App, in.Disk)
				}),
			},
		},
	}
}
