package tools

import (
	"context"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type plansArgs struct {
	Type string `json:"type"`
}

func plansFamily() *Family {
	return &Family{
		Name:        "plans",
		Description: "Look up the plans and regions resources can be created with.",
		Operations: []Operation{
			{
				ToolName:    "list_plans",
				Action:      "list",
				Description: "List available plans, optionally for one kind of resource",
				ToolArgs: map[string]Arg{
					"type": {
						Description: "Kind of resource the plans apply to",
						Type:        TypeString,
						Enum:        []string{"app", "database", "vm", "disk"},
					},
				},
				ReadOnly: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in plansArgs) (any, error) {
					return p.Plans.List(ctx, in.Type)
				}),
			},
			{
				ToolName:    "list_regions",
				Action:      "regions",
				Description: "List the regions resources can be placed in",
				ReadOnly:    true,
				Run: func(ctx context.Context, p *platform.Platform, _ map[string]any) (any, error) {
					return p.Plans.Regions(ctx)
				},
			},
		},
	}
}
