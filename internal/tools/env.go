package tools

import (
	"context"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type envKeyArgs struct {
	appArgs
	Key string `json:"key"`
}

type setEnvArgs struct {
	envKeyArgs
	Value string `json:"value"`
}

var argEnvKey = required("Variable name: letters, digits and underscores, not starting with a digit")

func envFamily() *Family {
	return &Family{
		Name: "env",
		Description: heredoc.Doc(`
			Manage the environment variables of an app. Changes take effect on
			the next deploy or restart.
		`),
		Operations: []Operation{
			{
				ToolName:    "list_env_vars",
				Action:      "list",
				Description: "List the environment variables of an app",
				ToolArgs:    map[string]Arg{"app": argApp},
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in appArgs) (any, error) {
					return p.Env.List(ctx, in.App)
				}),
			},
			{
				ToolName:    "set_env_var",
				Action:      "set",
				Description: "Create or replace an environment variable",
				ToolArgs: map[string]Arg{
					"app":   argApp,
					"key":   argEnvKey,
					"value": required("Value of the variable"),
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in setEnvArgs) (any, error) {
					return p.Env.Set(ctx, in.App, in.Key, in.Value)
				}),
			},
			{
				ToolName:    "delete_env_var",
				Action:      "delete",
				Description: "Remove an environment variable",
				ToolArgs: map[string]Arg{
					"app": argApp,
					"key": argEnvKey,
				},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in envKeyArgs) (any, error) {
					return p.Env.Delete(ctx, in.App, in.Key)
				}),
			},
		},
	}
}
