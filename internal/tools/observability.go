package tools

import (
	"context"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type logsArgs struct {
	appArgs
	platform.LogsInput
}

type metricsArgs struct {
	appArgs
	platform.MetricsInput
}

func observabilityFamily() *Family {
	return &Family{
		Name:        "observability",
		Description: "Read the logs and metrics of an app.",
		Operations: []Operation{
			{
				ToolName:    "get_app_logs",
				Action:      "logs",
				Description: "Get recent log lines of an app",
				ToolArgs: map[string]Arg{
					"app":   argApp,
					"lines": {Description: "Number of lines to return", Type: TypeNumber},
					"since": optional("Only return lines newer than this, e.g. 15m or an RFC 3339 time"),
					"level": {
						Description: "Minimum log level",
						Type:        TypeString,
						Enum:        []string{"debug", "info", "warn", "error"},
					},
				},
				ReadOnly: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in logsArgs) (any, error) {
					return p.Observability.Logs(ctx, in.App, in.LogsInput)
				}),
			},
			{
				ToolName:    "get_app_metrics",
				Action:      "metrics",
				Description: "Get resource usage metrics of an app",
				ToolArgs: map[string]Arg{
					"app": argApp,
					"metric": {
						Description: "Metric to return; all when omitted",
						Type:        TypeString,
						Enum:        []string{"cpu", "memory", "network", "requests"},
					},
					"period": optional("Time window, e.g. 1h or 24h"),
				},
				ReadOnly: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in metricsArgs) (any, error) {
					return p.Observability.Metrics(ctx, in.App, in.MetricsInput)
				}),
			},
		},
	}
}
