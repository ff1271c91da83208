package platform

import (
	"context"
	"net/http"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
)

type DeploymentService struct {
	client *api.Client
}

type DeployInput struct {
	Image    string `json:"image,omitempty"`
	Strategy string `json:"strategy,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (s *DeploymentService) List(ctx context.Context, app string, page *pagination.Request) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}
	return list(ctx, s.client, path("/v1/apps/%s/deployments", app), pageQuery(page), "deployments")
}

func (s *DeploymentService) Get(ctx context.Context, app, deployment string) (any, error) {
	if err := required("app", app, "deployment", deployment); err != nil {
		return nil, err
	}
	return get(ctx, s.client, path("/v1/apps/%s/deployments/%s", app, deployment), nil, "deployment")
}

// Deploy starts a new deployment of app. An empty image redeploys the
// current one.
func (s *DeploymentService) Deploy(ctx context.Context, app string, in DeployInput) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, path("/v1/apps/%s/deployments", app), in)
}

func (s *DeploymentService) Rollback(ctx context.Context, app, deployment string) (any, error) {
	if err := required("app", app, "deployment", deployment); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost,
		path("/v1/apps/%s/deployments/%s/actions/rollback", app, deployment), struct{}{})
}
