package tools

import (
	"context"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type resizeAppArgs struct {
	appArgs
	Plan string `json:"plan"`
}

func appsFamily() *Family {
	lifecycle := func(verb, description string, fn func(s *platform.AppService, ctx context.Context, app string) (any, error)) Operation {
		return Operation{
			ToolName:    verb + "_app",
			Action:      verb,
			Description: description,
			ToolArgs:    map[string]Arg{"app": argApp},
			Run: run(func(ctx context.Context, p *platform.Platform, in appArgs) (any, error) {
				return fn(p.Apps, ctx, in.App)
			}),
		}
	}

	return &Family{
		Name: "apps",
		Description: heredoc.Doc(`
			Manage apps: list, inspect, create and delete them, control their
			lifecycle and change their plan.
		`),
		Operations: []Operation{
			{
				ToolName:    "list_apps",
				Action:      "list",
				Description: "List the apps of the current team",
				ToolArgs:    withPaging(nil),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in pageArgs) (any, error) {
					return p.Apps.List(ctx, &in.Request)
				}),
			},
			{
				ToolName:    "get_app",
				Action:      "get",
				Description: "Get the details of an app",
				ToolArgs:    map[string]Arg{"app": argApp},
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in appArgs) (any, error) {
					return p.Apps.Get(ctx, in.App)
				}),
			},
			{
				ToolName: "create_app",
				Action:   "create",
				Description: heredoc.Doc(`
					Create an app. Names are 3 to 32 characters of lowercase letters,
					digits and hyphens, and cannot start or end with a hyphen.
				`),
				ToolArgs: map[string]Arg{
					"name":   required("Name of the new app"),
					"region": optional("Region to create the app in"),
					"plan":   optional("Plan of the app"),
					"image":  optional("Container image to run"),
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in platform.CreateAppInput) (any, error) {
					return p.Apps.Create(ctx, in)
				}),
			},
			{
				ToolName:    "delete_app",
				Action:      "delete",
				Description: "Permanently delete an app and its resources",
				ToolArgs:    map[string]Arg{"app": argApp},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in appArgs) (any, error) {
					return p.Apps.Delete(ctx, in.App)
				}),
			},
			lifecycle("start", "Start a stopped app", (*platform.AppService).Start),
			lifecycle("stop", "Stop a running app", (*platform.AppService).Stop),
			lifecycle("restart", "Restart an app", (*platform.AppService).Restart),
			{
				ToolName:    "resize_app",
				Action:      "resize",
				Description: "Move an app to another plan",
				ToolArgs: map[string]Arg{
					"app":  argApp,
					"plan": required("Plan to move the app to"),
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in resizeAppArgs) (any, error) {
					return p.Apps.Resize(ctx, in.App, in.Plan)
				}),
			},
		},
	}
}
