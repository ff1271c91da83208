package platform

import (
	"context"
	"net/http"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
)

// VMService talks to the VM API, which lives on its own base URL and uses
// unversioned /vm paths.
type VMService struct {
	client *api.Client
}

type CreateVMInput struct {
	Name    string   `json:"name"`
	Image   string   `json:"image"`
	Plan    string   `json:"plan,omitempty"`
	Region  string   `json:"region,omitempty"`
	SSHKeys []string `json:"sshKeys,omitempty"`
}

func (s *VMService) List(ctx context.Context, page *pagination.Request) (any, error) {
	return list(ctx, s.client, "/vm", pageQuery(page), "vms")
}

func (s *VMService) Get(ctx context.Context, vm string) (any, error) {
	if err := required("vm", vm); err != nil {
		return nil, err
	}
	return get(ctx, s.client, path("/vm/%s", vm), nil, "vm")
}

func (s *VMService) Create(ctx context.Context, in CreateVMInput) (any, error) {
	if err := required("name", in.Name, "image", in.Image); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, "/vm", in)
}

func (s *VMService) Delete(ctx context.Context, vm string) (any, error) {
	if err := required("vm", vm); err != nil {
		return nil, err
	}
	return remove(ctx, s.client, path("/vm/%s", vm), nil)
}

func (s *VMService) Start(ctx context.Context, vm string) (any, error) {
	return s.lifecycle(ctx, vm, actionStart)
}

func (s *VMService) Stop(ctx context.Context, vm string) (any, error) {
	return s.lifecycle(ctx, vm, actionStop)
}

func (s *VMService) Restart(ctx context.Context, vm string) (any, error) {
	return s.lifecycle(ctx, vm, actionRestart)
}

func (s *VMService) lifecycle(ctx context.Context, vm string, verb lifecycle) (any, error) {
	if err := required("vm", vm); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, path("/vm/%s/"+string(verb), vm), struct{}{})
}
