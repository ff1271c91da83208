package platform

import (
	"context"
	"net/http"
	"strings"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
	"github.com/skyport-cloud/skyport-mcp/internal/validation"
)

type DNSService struct {
	client *api.Client
}

type DNSRecordInput struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	TTL      *int   `json:"ttl,omitempty"`
	Priority *int   `json:"priority,omitempty"`
}

func (in *DNSRecordInput) validate() error {
	if err := validation.ValidateDNSRecordType(in.Type); err != nil {
		return err
	}
	in.Type = strings.ToUpper(in.Type)
	return required("name", in.Name, "value", in.Value)
}

func (s *DNSService) ListRecords(ctx context.Context, domain string, page *pagination.Request) (any, error) {
	if err := required("domain", domain); err != nil {
		return nil, err
	}
	return list(ctx, s.client, path("/v1/domains/%s/records", domain), pageQuery(page), "records")
}

func (s *DNSService) CreateRecord(ctx context.Context, domain string, in DNSRecordInput) (any, error) {
	if err := validation.ValidateDomainName(domain); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, path("/v1/domains/%s/records", domain), in)
}

func (s *DNSService) UpdateRecord(ctx context.Context, domain, record string, in DNSRecordInput) (any, error) {
	if err := required("domain", domain, "record", record); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPut, path("/v1/domains/%s/records/%s", domain, record), in)
}

func (s *DNSService) DeleteRecord(ctx context.Context, domain, record string) (any, error) {
	if err := required("domain", domain, "record", record); err != nil {
		return nil, err
	}
	return remove(ctx, s.client, path("/v1/domains/%s/records/%s", domain, record), nil)
}
