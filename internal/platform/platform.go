// Package platform implements one service per resource family of the
// platform API. Services validate their input before any request is sent,
// normalize paging arguments and unwrap collection responses. They keep no
// state beyond the shared API clients.
package platform

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/logger"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
	"github.com/skyport-cloud/skyport-mcp/internal/unwrap"
	"github.com/skyport-cloud/skyport-mcp/internal/validation"
)

// Platform groups every resource service.
type Platform struct {
	Apps          *AppService
	Databases     *DatabaseService
	Storage       *StorageService
	Domains       *DomainService
	DNS           *DNSService
	Disks         *DiskService
	VMs           *VMService
	Mail          *MailService
	Networks      *NetworkService
	Plans         *PlanService
	Env           *EnvService
	Deployments   *DeploymentService
	Settings      *SettingsService
	Observability *ObservabilityService
	Account       *AccountService
}

type options struct {
	files fs.FS
}

type Option func(*options)

// WithFiles sets the file system uploads read from. It defaults to the host
// file system, with names interpreted as OS paths.
func WithFiles(files fs.FS) Option {
	return func(o *options) {
		o.files = files
	}
}

// New returns a Platform talking to the platform API through client and to
// the VM API through vmClient.
func New(client, vmClient *api.Client, opts ...Option) *Platform {
	o := options{files: hostFS{}}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Platform{
		Apps:          &AppService{client: client},
		Databases:     &DatabaseService{client: client},
		Storage:       &StorageService{client: client, files: o.files},
		Domains:       &DomainService{client: client},
		DNS:           &DNSService{client: client},
		Disks:         &DiskService{client: client},
		VMs:           &VMService{client: vmClient},
		Mail:          &MailService{client: client},
		Networks:      &NetworkService{client: client},
		Plans:         &PlanService{client: client},
		Env:           &EnvService{client: client},
		Deployments:   &DeploymentService{client: client},
		Settings:      &SettingsService{client: client},
		Observability: &ObservabilityService{client: client},
	}
	p.Account = &AccountService{client: client, apps: p.Apps, databases: p.Databases, storage: p.Storage}

	return p
}

type hostFS struct{}

func (hostFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// path joins segments after escaping each one, so identifiers containing
// slashes cannot address another resource.
func path(format string, segments ...string) string {
	escaped := make([]any, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return fmt.Sprintf(format, escaped...)
}

func pageQuery(req *pagination.Request) url.Values {
	return pagination.Normalize(req).Values()
}

// list fetches a collection and unwraps it, trying keys before the
// conventional wrapper keys.
func list(ctx context.Context, client *api.Client, endpoint string, query url.Values, keys ...string) (any, error) {
	var resp any
	if err := client.Get(ctx, endpoint, query, &resp); err != nil {
		return nil, err
	}
	return unwrap.Payload(resp, unwrap.Keys(keys...)), nil
}

// get fetches a single resource, unwrapping it only when it is nested under
// one of keys. Resource bodies may carry fields named like the conventional
// wrapper keys, so those are not tried.
func get(ctx context.Context, client *api.Client, endpoint string, query url.Values, keys ...string) (any, error) {
	var resp any
	if err := client.Get(ctx, endpoint, query, &resp); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return resp, nil
	}
	return unwrap.Payload(resp, keys), nil
}

// send issues a mutating request and returns the decoded response, if any.
func send(ctx context.Context, client *api.Client, method, endpoint string, in any, keys ...string) (any, error) {
	var resp any
	if err := client.Do(ctx, method, endpoint, nil, in, &resp); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return resp, nil
	}
	return unwrap.Payload(resp, keys), nil
}

func remove(ctx context.Context, client *api.Client, endpoint string, query url.Values) (any, error) {
	var resp any
	if err := client.Delete(ctx, endpoint, query, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// lifecycle is the verb of an action endpoint.
type lifecycle string

const (
	actionStart   lifecycle = "start"
	actionStop    lifecycle = "stop"
	actionRestart lifecycle = "restart"
	actionResize  lifecycle = "resize"
)

func action(ctx context.Context, client *api.Client, collection, id string, verb lifecycle, in any) (any, error) {
	if in == nil {
		in = struct{}{}
	}
	return send(ctx, client, http.MethodPost, path("/v1/"+collection+"/%s/actions/"+string(verb), id), in)
}

func log(ctx context.Context) *logger.Logger {
	if l := logger.MaybeFromContext(ctx); l != nil {
		return l
	}
	return logger.Discard()
}

// required checks field/value pairs in order and reports the first missing
// value.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := validation.RequireValue(pairs[i+1], pairs[i]); err != nil {
			return err
		}
	}
	return nil
}
