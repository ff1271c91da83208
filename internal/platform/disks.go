package platform

import (
	"context"
	"net/http"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
	"github.com/skyport-cloud/skyport-mcp/internal/toolerr"
)

// DiskService manages the persistent disks attached to an app.
type DiskService struct {
	client *api.Client
}

type CreateDiskInput struct {
	Name      string `json:"name"`
	SizeGB    int    `json:"sizeGb"`
	MountPath string `json:"mountPath,omitempty"`
}

func (s *DiskService) List(ctx context.Context, app string, page *pagination.Request) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}
	return list(ctx, s.client, path("/v1/apps/%s/disks", app), pageQuery(page), "disks")
}

func (s *DiskService) Create(ctx context.Context, app string, in CreateDiskInput) (any, error) {
	if err := required("app", app, "name", in.Name); err != nil {
		return nil, err
	}
	if err := positiveSize(in.SizeGB); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, path("/v1/apps/%s/disks", app), in)
}

// Resize grows disk to sizeGB gigabytes.
func (s *DiskService) Resize(ctx context.Context, app, disk string, sizeGB int) (any, error) {
	if err := required("app", app, "disk", disk); err != nil {
		return nil, err
	}
	if err := positiveSize(sizeGB); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPatch, path("/v1/apps/%s/disks/%s", app, disk), map[string]int{"sizeGb": sizeGB})
}

func (s *DiskService) Delete(ctx context.Context, app, disk string) (any, error) {
	if err := required("app", app, "disk", disk); err != nil {
		return nil, err
	}
	return remove(ctx, s.client, path("/v1/apps/%s/disks/%s", app, disk), nil)
}

func positiveSize(sizeGB int) error {
	if sizeGB <= 0 {
		return toolerr.NewValidationError("sizeGb", toolerr.CodeInvalidArguments,
			"sizeGb must be a positive number of gigabytes")
	}
	return nil
}
