package tools

import (
	"context"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type mailDomainArgs struct {
	DomainID string `json:"domainId"`
}

type mailDomainPageArgs struct {
	mailDomainArgs
	pageArgs
}

type createMailboxArgs struct {
	mailDomainArgs
	platform.CreateMailboxInput
}

type mailboxArgs struct {
	mailDomainArgs
	Mailbox string `json:"mailbox"`
}

var argMailDomain = required("ID of the mail domain")

func mailFamily() *Family {
	return &Family{
		Name:        "mail",
		Description: "Manage mail domains and the mailboxes hosted on them.",
		Operations: []Operation{
			{
				ToolName:    "list_mail_domains",
				Action:      "list_domains",
				Description: "List the mail domains of the current team",
				ToolArgs:    withPaging(nil),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in pageArgs) (any, error) {
					return p.Mail.ListDomains(ctx, &in.Request)
				}),
			},
			{
				ToolName:    "create_mail_domain",
				Action:      "create_domain",
				Description: "Enable mail hosting for a domain",
				ToolArgs:    map[string]Arg{"domain": argDomain},
				Run: run(func(ctx context.Context, p *platform.Platform, in domainArgs) (any, error) {
					return p.Mail.CreateDomain(ctx, in.Domain)
				}),
			},
			{
				ToolName:    "delete_mail_domain",
				Action:      "delete_domain",
				Description: "Delete a mail domain and all of its mailboxes",
				ToolArgs:    map[string]Arg{"domainId": argMailDomain},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in mailDomainArgs) (any, error) {
					return p.Mail.DeleteDomain(ctx, in.DomainID)
				}),
			},
			{
				ToolName:    "list_mailboxes",
				Action:      "list_mailboxes",
				Description: "List the mailboxes of a mail domain",
				ToolArgs:    withPaging(map[string]Arg{"domainId": argMailDomain}),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in mailDomainPageArgs) (any, error) {
					return p.Mail.ListMailboxes(ctx, in.DomainID, &in.Request)
				}),
			},
			{
				ToolName:    "create_mailbox",
				Action:      "create_mailbox",
				Description: "Create a mailbox on a mail domain",
				ToolArgs: map[string]Arg{
					"domainId": argMailDomain,
					"name":     required("Local part of the address"),
					"password": optional("Initial password; generated when omitted"),
					"quotaMb":  {Description: "Mailbox quota in MB", Type: TypeNumber},
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in createMailboxArgs) (any, error) {
					return p.Mail.CreateMailbox(ctx, in.DomainID, in.CreateMailboxInput)
				}),
			},
			{
				ToolName:    "delete_mailbox",
				Action:      "delete_mailbox",
				Description: "Delete a mailbox and its messages",
				ToolArgs: map[string]Arg{
					"domainId": argMailDomain,
					"mailbox":  required("ID of the mailbox"),
				},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in mailboxArgs) (any, error) {
					return p.Mail.DeleteMailbox(ctx, in.DomainID, in.Mailbox)
				}),
			},
		},
	}
}
