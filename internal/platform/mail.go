package platform

import (
	"context"
	"net/http"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
	"github.com/skyport-cloud/skyport-mcp/internal/validation"
)

// MailService manages mail domains and the mailboxes under them.
type MailService struct {
	client *api.Client
}

type CreateMailboxInput struct {
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
	QuotaMB  int    `json:"quotaMb,omitempty"`
}

func (s *MailService) ListDomains(ctx context.Context, page *pagination.Request) (any, error) {
	return list(ctx, s.client, "/v1/mail/domains", pageQuery(page), "domains")
}

func (s *MailService) CreateDomain(ctx context.Context, domain string) (any, error) {
	if err := validation.ValidateDomainName(domain); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, "/v1/mail/domains", map[string]string{"domain": domain})
}

func (s *MailService) DeleteDomain(ctx context.Context, domainID string) (any, error) {
	if err := required("domainId", domainID); err != nil {
		return nil, err
	}
	return remove(ctx, s.client, path("/v1/mail/domains/%s", domainID), nil)
}

func (s *MailService) ListMailboxes(ctx context.Context, domainID string, page *pagination.Request) (any, error) {
	if err := required("domainId", domainID); err != nil {
		return nil, err
	}
	return list(ctx, s.client, path("/v1/mail/domains/%s/mailboxes", domainID), pageQuery(page), "mailboxes")
}

func (s *MailService) CreateMailbox(ctx context.Context, domainID string, in CreateMailboxInput) (any, error) {
	if err := required("domainId", domainID, "name", in.Name); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, path("/v1/mail/domains/%s/mailboxes", domainID), in)
}

func (s *MailService) DeleteMailbox(ctx context.Context, domainID, mailbox string) (any, error) {
	if err := required("domainId", domainID, "mailbox", mailbox); err != nil {
		return nil, err
	}
	return remove(ctx, s.client, path("/v1/mail/domains/%s/mailboxes/%s", domainID, mailbox), nil)
}
