package tools

import (
	"context"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type deploymentArgs struct {
	appArgs
	Deployment string `json:"deployment"`
}

type deployArgs struct {
	appArgs
	platform.DeployInput
}

var argDeployment = required("ID of the deployment")

func deploymentsFamily() *Family {
	return &Family{
		Name:        "deployments",
		Description: "Deploy apps and inspect or roll back their deployment history.",
		Operations: []Operation{
			{
				ToolName:    "list_deployments",
				Action:      "list",
				Description: "List the deployments of an app, newest first",
				ToolArgs:    withPaging(map[string]Arg{"app": argApp}),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in appPageArgs) (any, error) {
					return p.Deployments.List(ctx, in.App, &in.Request)
				}),
			},
			{
				ToolName:    "get_deployment",
				Action:      "get",
				Description: "Get the status of a deployment",
				ToolArgs: map[string]Arg{
					"app":        argApp,
					"deployment": argDeployment,
				},
				ReadOnly: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in deploymentArgs) (any, error) {
					return p.Deployments.Get(ctx, in.App, in.Deployment)
				}),
			},
			{
				ToolName:    "deploy_app",
				Action:      "deploy",
				Description: "Start a new deployment of an app",
				ToolArgs: map[string]Arg{
					"app":   argApp,
					"image": optional("Container image to deploy; defaults to the current one"),
					"strategy": {
						Description: "Rollout strategy",
						Type:        TypeString,
						Enum:        []string{"rolling", "immediate", "bluegreen"},
					},
					"message": optional("Note recorded with the deployment"),
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in deployArgs) (any, error) {
					return p.Deployments.Deploy(ctx, in.App, in.DeployInput)
				}),
			},
			{
				ToolName:    "rollback_deployment",
				Action:      "rollback",
				Description: "Roll an app back to a previous deployment",
				ToolArgs: map[string]Arg{
					"app":        argApp,
					"deployment": argDeployment,
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in deploymentArgs) (any, error) {
					return p.Deployments.Rollback(ctx, in.App, in.Deployment)
				}),
			},
		},
	}
}
