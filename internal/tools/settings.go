package tools

import (
	"context"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type updateSettingsArgs struct {
	appArgs
	Settings map[string]any `json:"settings"`
}

func settingsFamily() *Family {
	return &Family{
		Name:        "settings",
		Description: "Read and change the settings of an app.",
		Operations: []Operation{
			{
				ToolName:    "get_app_settings",
				Action:      "get",
				Description: "Get the settings of an app",
				ToolArgs:    map[string]Arg{"app": argApp},
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in appArgs) (any, error) {
					return p.Settings.Get(ctx, in.App)
				}),
			},
			{
				ToolName:    "update_app_settings",
				Action:      "update",
				Description: "Change some settings of an app; unnamed settings are left as they are",
				ToolArgs: map[string]Arg{
					"app":      argApp,
					"settings": {Description: "Settings to change, keyed by name", Required: true, Type: TypeObject},
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in updateSettingsArgs) (any, error) {
					return p.Settings.Update(ctx, in.App, in.Settings)
				}),
			},
		},
	}
}
