package tools

import (
	"context"
	"maps"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type domainArgs struct {
	Domain string `json:"domain"`
}

type addDomainArgs struct {
	domainArgs
	App string `json:"app"`
}

type domainPageArgs struct {
	domainArgs
	pageArgs
}

type recordArgs struct {
	domainArgs
	Record string `json:"record"`
}

type recordInputArgs struct {
	domainArgs
	platform.DNSRecordInput
	Record string `json:"record"`
}

var (
	argDomain = required("Domain name, e.g. example.com")

	recordInputs = map[string]Arg{
		"type":     {Description: "Record type", Required: true, Type: TypeString, Enum: []string{"A", "AAAA", "CNAME", "MX", "TXT", "NS", "SRV", "CAA"}},
		"name":     required("Record name relative to the domain, @ for the apex"),
		"value":    required("Record value"),
		"ttl":      {Description: "Time to live in seconds", Type: TypeNumber},
		"priority": {Description: "Priority for MX and SRV records", Type: TypeNumber},
	}
)

func domainsFamily() *Family {
	return &Family{
		Name:        "domains",
		Description: "Manage custom domains and their verification.",
		Operations: []Operation{
			{
				ToolName:    "list_domains",
				Action:      "list",
				Description: "List the custom domains of the current team",
				ToolArgs:    withPaging(nil),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in pageArgs) (any, error) {
					return p.Domains.List(ctx, &in.Request)
				}),
			},
			{
				ToolName:    "get_domain",
				Action:      "get",
				Description: "Get a custom domain and its verification status",
				ToolArgs:    map[string]Arg{"domain": argDomain},
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in domainArgs) (any, error) {
					return p.Domains.Get(ctx, in.Domain)
				}),
			},
			{
				ToolName:    "add_domain",
				Action:      "add",
				Description: "Add a custom domain, optionally attaching it to an app",
				ToolArgs: map[string]Arg{
					"domain": argDomain,
					"app":    optional("App to route the domain to"),
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in addDomainArgs) (any, error) {
					return p.Domains.Add(ctx, in.Domain, in.App)
				}),
			},
			{
				ToolName:    "delete_domain",
				Action:      "delete",
				Description: "Remove a custom domain",
				ToolArgs:    map[string]Arg{"domain": argDomain},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in domainArgs) (any, error) {
					return p.Domains.Delete(ctx, in.Domain)
				}),
			},
			{
				ToolName:    "verify_domain",
				Action:      "verify",
				Description: "Re-check the ownership records of a custom domain",
				ToolArgs:    map[string]Arg{"domain": argDomain},
				Run: run(func(ctx context.Context, p *platform.Platform, in domainArgs) (any, error) {
					return p.Domains.Verify(ctx, in.Domain)
				}),
			},
		},
	}
}

func dnsFamily() *Family {
	return &Family{
		Name:        "dns",
		Description: "Manage the DNS records of a custom domain.",
		Operations: []Operation{
			{
				ToolName:    "list_dns_records",
				Action:      "list",
				Description: "List the DNS records of a domain",
				ToolArgs:    withPaging(map[string]Arg{"domain": argDomain}),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in domainPageArgs) (any, error) {
					return p.DNS.ListRecords(ctx, in.Domain, &in.Request)
				}),
			},
			{
				ToolName:    "create_dns_record",
				Action:      "create",
				Description: "Create a DNS record",
				ToolArgs:    withDomain(recordInputs),
				Run: run(func(ctx context.Context, p *platform.Platform, in recordInputArgs) (any, error) {
					return p.DNS.CreateRecord(ctx, in.Domain, in.DNSRecordInput)
				}),
			},
			{
				ToolName:    "update_dns_record",
				Action:      "update",
				Description: "Replace a DNS record",
				ToolArgs:    withDomain(recordInputs, "record"),
				Run: run(func(ctx context.Context, p *platform.Platform, in recordInputArgs) (any, error) {
					return p.DNS.UpdateRecord(ctx, in.Domain, in.Record, in.DNSRecordInput)
				}),
			},
			{
				ToolName:    "delete_dns_record",
				Action:      "delete",
				Description: "Delete a DNS record",
				ToolArgs: map[string]Arg{
					"domain": argDomain,
					"record": required("ID of the record"),
				},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in recordArgs) (any, error) {
					return p.DNS.DeleteRecord(ctx, in.Domain, in.Record)
				}),
			},
		},
	}
}

// withDomain returns args plus the domain argument and, when named, the
// record ID argument.
func withDomain(args map[string]Arg, record ...string) map[string]Arg {
	out := maps.Clone(args)
	out["domain"] = argDomain
	for _, name := range record {
		out[name] = required("ID of the record")
	}
	return out
}
