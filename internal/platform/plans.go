package platform

import (
	"context"
	"net/url"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
)

type PlanService struct {
	client *api.Client
}

// List returns the available plans, optionally narrowed to one resource kind
// such as "app" or "database".
func (s *PlanService) List(ctx context.Context, kind string) (any, error) {
	query := url.Values{}
	if kind != "" {
		query.Set("type", kind)
	}
	return list(ctx, s.client, "/v1/plans", query, "plans")
}

func (s *PlanService) Regions(ctx context.Context) (any, error) {
	return list(ctx, s.client, "/v1/regions", nil, "regions")
}
