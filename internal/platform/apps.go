package platform

import (
	"context"
	"net/http"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
	"github.com/skyport-cloud/skyport-mcp/internal/validation"
)

type AppService struct {
	client *api.Client
}

// CreateAppInput is the body of an app creation request.
type CreateAppInput struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
	Plan   string `json:"plan,omitempty"`
	Image  string `json:"image,omitempty"`
}

func (s *AppService) List(ctx context.Context, page *pagination.Request) (any, error) {
	return list(ctx, s.client, "/v1/apps", pageQuery(page), "apps")
}

func (s *AppService) Get(ctx context.Context, app string) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}
	return get(ctx, s.client, path("/v1/apps/%s", app), nil, "app")
}

func (s *AppService) Create(ctx context.Context, in CreateAppInput) (any, error) {
	if err := validation.ValidateAppName(in.Name); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, "/v1/apps", in)
}

func (s *AppService) Delete(ctx context.Context, app string) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}
	return remove(ctx, s.client, path("/v1/apps/%s", app), nil)
}

func (s *AppService) Start(ctx context.Context, app string) (any, error) {
	return s.lifecycle(ctx, app, actionStart)
}

func (s *AppService) Stop(ctx context.Context, app string) (any, error) {
	return s.lifecycle(ctx, app, actionStop)
}

func (s *AppService) Restart(ctx context.Context, app string) (any, error) {
	return s.lifecycle(ctx, app, actionRestart)
}

// Resize moves app to plan.
func (s *AppService) Resize(ctx context.Context, app, plan string) (any, error) {
	if err := required("app", app, "plan", plan); err != nil {
		return nil, err
	}
	return action(ctx, s.client, "apps", app, actionResize, map[string]string{"plan": plan})
}

func (s *AppService) lifecycle(ctx context.Context, app string, verb lifecycle) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}
	return action(ctx, s.client, "apps", app, verb, nil)
}
