package platform

import (
	"context"
	"net/http"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
)

// NetworkService manages private networks.
type NetworkService struct {
	client *api.Client
}

type CreateNetworkInput struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
	CIDR   string `json:"cidr,omitempty"`
}

func (s *NetworkService) List(ctx context.Context, page *pagination.Request) (any, error) {
	return list(ctx, s.client, "/v1/networks", pageQuery(page), "networks")
}

func (s *NetworkService) Get(ctx context.Context, network string) (any, error) {
	if err := required("network", network); err != nil {
		return nil, err
	}
	return get(ctx, s.client, path("/v1/networks/%s", network), nil, "network")
}

func (s *NetworkService) Create(ctx context.Context, in CreateNetworkInput) (any, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, "/v1/networks", in)
}

func (s *NetworkService) Delete(ctx context.Context, network string) (any, error) {
	if err := required("network", network); err != nil {
		return nil, err
	}
	return remove(ctx, s.client, path("/v1/networks/%s", network), nil)
}
