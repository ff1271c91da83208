package platform

import (
	"context"
	"net/http"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
	"github.com/skyport-cloud/skyport-mcp/internal/validation"
)

type DomainService struct {
	client *api.Client
}

func (s *DomainService) List(ctx context.Context, page *pagination.Request) (any, error) {
	return list(ctx, s.client, "/v1/domains", pageQuery(page), "domains")
}

func (s *DomainService) Get(ctx context.Context, domain string) (any, error) {
	if err := required("domain", domain); err != nil {
		return nil, err
	}
	return get(ctx, s.client, path("/v1/domains/%s", domain), nil, "domain")
}

// Add registers domain with the team, optionally attached to app.
func (s *DomainService) Add(ctx context.Context, domain, app string) (any, error) {
	if err := validation.ValidateDomainName(domain); err != nil {
		return nil, err
	}

	body := map[string]string{"name": domain}
	if app != "" {
		body["app"] = app
	}

	return send(ctx, s.client, http.MethodPost, "/v1/domains", body)
}

func (s *DomainService) Delete(ctx context.Context, domain string) (any, error) {
	if err := required("domain", domain); err != nil {
		return nil, err
	}
	return remove(ctx, s.client, path("/v1/domains/%s", domain), nil)
}

// Verify asks the platform to re-check the domain's ownership records.
func (s *DomainService) Verify(ctx context.Context, domain string) (any, error) {
	if err := required("domain", domain); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, path("/v1/domains/%s/actions/verify", domain), struct{}{})
}
