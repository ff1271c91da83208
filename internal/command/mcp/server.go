package mcp

import (
	"context"
	"net/http"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/buildinfo"
	"github.com/skyport-cloud/skyport-mcp/internal/config"
	"github.com/skyport-cloud/skyport-mcp/internal/logger"
	"github.com/skyport-cloud/skyport-mcp/internal/metrics"
	"github.com/skyport-cloud/skyport-mcp/internal/platform"
	"github.com/skyport-cloud/skyport-mcp/internal/render"
	"github.com/skyport-cloud/skyport-mcp/internal/tools"
	"github.com/skyport-cloud/skyport-mcp/internal/tracing"
)

// NewDispatcher builds the API clients described by cfg and returns a
// dispatcher over them. It fails when the clients cannot be constructed, e.g.
// without an API token.
func NewDispatcher(cfg *config.Config, m *metrics.Metrics, l *logger.Logger) (*tools.Dispatcher, error) {
	transport := m.InstrumentTransport(tracing.Transport(http.DefaultTransport))

	client, err := api.New(api.Options{
		BaseURL:   cfg.APIBaseURL,
		Token:     cfg.APIToken,
		TeamID:    cfg.TeamID,
		UserAgent: buildinfo.UserAgent(),
		Transport: transport,
		Logger:    l,
	})
	if err != nil {
		return nil, err
	}

	vmClient, err := api.New(api.Options{
		BaseURL:   cfg.VMBaseURL,
		Token:     cfg.APIToken,
		TeamID:    cfg.TeamID,
		UserAgent: buildinfo.UserAgent(),
		Transport: transport,
		Logger:    l,
	})
	if err != nil {
		return nil, err
	}

	if l != nil {
		l.Debugf("platform API %s, VM API %s, team %q", client.BaseURL(), vmClient.BaseURL(), client.TeamID())
	}

	return tools.New(
		tools.ModeFor(cfg.ConsolidatedTools),
		platform.New(client, vmClient),
		tools.WithMetrics(m),
		tools.WithLogger(l),
	), nil
}

// NewServer returns an MCP server exposing every tool of d.
func NewServer(d *tools.Dispatcher) *server.MCPServer {
	srv := server.NewMCPServer(
		buildinfo.Name,
		buildinfo.Version().String(),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	for _, tool := range d.Tools() {
		srv.AddTool(tool, handler(d))
	}

	return srv
}

func handler(d *tools.Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		return toolResult(d.Dispatch(ctx, request.Params.Name, request.GetArguments()))
	}
}

// toolResult renders result as a single text block: the message of a
// successful call without data, the data as JSON, or the whole envelope as
// JSON with the error flag set.
func toolResult(result *tools.Result) (*mcpgo.CallToolResult, error) {
	if !result.Success {
		text, err := render.JSONString(result)
		if err != nil {
			return nil, err
		}
		return mcpgo.NewToolResultError(text), nil
	}

	if result.Data == nil {
		return mcpgo.NewToolResultText(result.Message), nil
	}

	text, err := render.JSONString(result.Data)
	if err != nil {
		return nil, err
	}
	return mcpgo.NewToolResultText(text), nil
}
