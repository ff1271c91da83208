package tools

import (
	"context"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

func accountFamily() *Family {
	return &Family{
		Name:        "account",
		Description: "Inspect the current user, their teams and a summary of the team's infrastructure.",
		Operations: []Operation{
			{
				ToolName:    "get_user",
				Action:      "user",
				Description: "Get the user the API token belongs to",
				ReadOnly:    true,
				Run: func(ctx context.Context, p *platform.Platform, _ map[string]any) (any, error) {
					return p.Account.User(ctx)
				},
			},
			{
				ToolName:    "list_teams",
				Action:      "teams",
				Description: "List the teams the user belongs to",
				ToolArgs:    withPaging(nil),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in pageArgs) (any, error) {
					return p.Account.Teams(ctx, &in.Request)
				}),
			},
			{
				ToolName:    "get_infrastructure_overview",
				Action:      "overview",
				Description: "Summarize the apps, databases and buckets of the current team",
				ReadOnly:    true,
				Run: func(ctx context.Context, p *platform.Platform, _ map[string]any) (any, error) {
					return p.Account.Overview(ctx)
				},
			},
		},
	}
}
