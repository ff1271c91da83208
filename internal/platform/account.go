package platform

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize/english"
	"golang.org/x/sync/errgroup"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
)

// AccountService covers the authenticated user and the views spanning
// several resource families.
type AccountService struct {
	client    *api.Client
	apps      *AppService
	databases *DatabaseService
	storage   *StorageService
}

// Overview is the combined inventory of apps, databases and buckets.
type Overview struct {
	Summary   string `json:"summary"`
	Apps      any    `json:"apps"`
	Databases any    `json:"databases"`
	Buckets   any    `json:"buckets"`
}

func (s *AccountService) User(ctx context.Context) (any, error) {
	return get(ctx, s.client, "/v1/user", nil, "user")
}

func (s *AccountService) Teams(ctx context.Context, page *pagination.Request) (any, error) {
	return list(ctx, s.client, "/v1/teams", pageQuery(page), "teams")
}

// Overview lists apps, databases and buckets concurrently. It fails as a
// whole if any of the three listings fails.
func (s *AccountService) Overview(ctx context.Context) (*Overview, error) {
	var out Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Apps, err = s.apps.List(ctx, nil)
		return
	})
	g.Go(func() (err error) {
		out.Databases, err = s.databases.List(ctx, nil)
		return
	})
	g.Go(func() (err error) {
		out.Buckets, err = s.storage.List(ctx, nil)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Summary = fmt.Sprintf("%s, %s, %s",
		english.Plural(count(out.Apps), "app", ""),
		english.Plural(count(out.Databases), "database", ""),
		english.Plural(count(out.Buckets), "bucket", ""),
	)

	return &out, nil
}

func count(payload any) int {
	if items, ok := payload.([]any); ok {
		return len(items)
	}
	return 0
}
