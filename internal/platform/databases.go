package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/lo"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
	"github.com/skyport-cloud/skyport-mcp/internal/toolerr"
	"github.com/skyport-cloud/skyport-mcp/internal/unwrap"
	"github.com/skyport-cloud/skyport-mcp/internal/validation"
)

// CodeDatabaseNotFound is returned when a database name matches nothing.
const CodeDatabaseNotFound = "DATABASE_NOT_FOUND"

var databaseHints = []string{
	"List databases to see their IDs and hostnames",
	"Pass the 24 character database ID instead of the hostname",
}

// DatabaseService addresses databases by ID or hostname. Every operation
// other than List and Create resolves the identifier first.
type DatabaseService struct {
	client *api.Client
}

type CreateDatabaseInput struct {
	Name    string `json:"name"`
	Engine  string `json:"engine"`
	Version string `json:"version,omitempty"`
	Plan    string `json:"plan,omitempty"`
	Region  string `json:"region,omitempty"`
}

func (s *DatabaseService) List(ctx context.Context, page *pagination.Request) (any, error) {
	return list(ctx, s.client, "/v1/databases", pageQuery(page), "databases")
}

// Resolve maps identifier to a database ID. Identifiers that look like IDs
// are returned as is; anything else is looked up by hostname or ID among all
// databases.
func (s *DatabaseService) Resolve(ctx context.Context, identifier string) (string, error) {
	if err := required("database", identifier); err != nil {
		return "", err
	}
	if validation.IsObjectID(identifier) {
		return identifier, nil
	}

	var resp any
	if err := s.client.Get(ctx, "/v1/databases", nil, &resp); err != nil {
		return "", err
	}
	databases, _ := unwrap.List(resp, unwrap.Keys("databases"))

	match, ok := lo.Find(databases, func(item any) bool {
		db, ok := item.(map[string]any)
		if !ok || stringField(db, "id") == "" {
			return false
		}
		return stringField(db, "hostname") == identifier || stringField(db, "id") == identifier
	})
	if !ok {
		return "", &toolerr.NotFoundError{
			Code:       CodeDatabaseNotFound,
			Resource:   "database",
			Identifier: identifier,
			Hints:      databaseHints,
		}
	}

	id := stringField(match.(map[string]any), "id")
	log(ctx).Debugf("resolved database %s to %s", identifier, id)

	return id, nil
}

func (s *DatabaseService) Get(ctx context.Context, database string) (any, error) {
	id, err := s.Resolve(ctx, database)
	if err != nil {
		return nil, err
	}
	out, err := get(ctx, s.client, path("/v1/databases/%s", id), nil, "database")
	return out, missingDatabase(err)
}

func (s *DatabaseService) Create(ctx context.Context, in CreateDatabaseInput) (any, error) {
	if err := required("name", in.Name, "engine", in.Engine); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, "/v1/databases", in)
}

func (s *DatabaseService) Delete(ctx context.Context, database string) (any, error) {
	id, err := s.Resolve(ctx, database)
	if err != nil {
		return nil, err
	}
	out, err := remove(ctx, s.client, path("/v1/databases/%s", id), nil)
	return out, missingDatabase(err)
}

func (s *DatabaseService) Start(ctx context.Context, database string) (any, error) {
	return s.lifecycle(ctx, database, actionStart, nil)
}

func (s *DatabaseService) Stop(ctx context.Context, database string) (any, error) {
	return s.lifecycle(ctx, database, actionStop, nil)
}

func (s *DatabaseService) Restart(ctx context.Context, database string) (any, error) {
	return s.lifecycle(ctx, database, actionRestart, nil)
}

func (s *DatabaseService) Resize(ctx context.Context, database, plan string) (any, error) {
	if err := required("plan", plan); err != nil {
		return nil, err
	}
	return s.lifecycle(ctx, database, actionResize, map[string]string{"plan": plan})
}

// Credentials returns the connection credentials of database.
func (s *DatabaseService) Credentials(ctx context.Context, database string) (any, error) {
	id, err := s.Resolve(ctx, database)
	if err != nil {
		return nil, err
	}
	out, err := get(ctx, s.client, path("/v1/databases/%s/credentials", id), nil, "credentials")
	return out, missingDatabase(err)
}

func (s *DatabaseService) lifecycle(ctx context.Context, database string, verb lifecycle, in any) (any, error) {
	id, err := s.Resolve(ctx, database)
	if err != nil {
		return nil, err
	}
	out, err := action(ctx, s.client, "databases", id, verb, in)
	return out, missingDatabase(err)
}

// missingDatabase points a 404 for a resolved database ID at the lookup.
func missingDatabase(err error) error {
	if api.IsNotFound(err) {
		return api.WithHints(err, databaseHints...)
	}
	return err
}

// stringField renders object[key] as a string, or "" when absent.
func stringField(object map[string]any, key string) string {
	v, ok := object[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
