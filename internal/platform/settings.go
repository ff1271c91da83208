package platform

import (
	"context"
	"net/http"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/toolerr"
)

type SettingsService struct {
	client *api.Client
}

func (s *SettingsService) Get(ctx context.Context, app string) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}
	return get(ctx, s.client, path("/v1/apps/%s/settings", app), nil, "settings")
}

// Update applies a partial settings document to app.
func (s *SettingsService) Update(ctx context.Context, app string, settings map[string]any) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}
	if len(settings) == 0 {
		return nil, toolerr.NewValidationError("settings", toolerr.CodeInvalidArguments,
			"settings must contain at least one field",
			"Pass the settings to change, for example {\"autoscaling\": true}",
		)
	}
	return send(ctx, s.client, http.MethodPatch, path("/v1/apps/%s/settings", app), settings)
}
