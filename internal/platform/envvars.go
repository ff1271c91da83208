package platform

import (
	"context"
	"net/http"
	"sort"

	"github.com/samber/lo"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/toolerr"
	"github.com/skyport-cloud/skyport-mcp/internal/unwrap"
	"github.com/skyport-cloud/skyport-mcp/internal/validation"
)

// CodeEnvVarNotFound is returned when deleting a key the app does not have.
const CodeEnvVarNotFound = "ENV_VAR_NOT_FOUND"

const envVarsBodyKey = "environmentVariables"

// EnvService manages app environment variables. The API only accepts the
// full variable set, so every change is a read followed by a single write.
type EnvService struct {
	client *api.Client
}

func (s *EnvService) List(ctx context.Context, app string) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}
	return s.read(ctx, app)
}

// Set adds key or replaces its value, leaving every other variable as is.
func (s *EnvService) Set(ctx context.Context, app, key, value string) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}
	if err := validation.ValidateEnvKey(key); err != nil {
		return nil, err
	}

	vars, err := s.read(ctx, app)
	if err != nil {
		return nil, err
	}

	replaced := false
	vars = lo.Map(vars, func(v map[string]any, _ int) map[string]any {
		if v["key"] != key {
			return v
		}
		replaced = true
		updated := lo.Assign(v)
		updated["value"] = value
		return updated
	})
	if !replaced {
		vars = append(vars, map[string]any{"key": key, "value": value})
	}

	return s.write(ctx, app, vars)
}

// Delete removes the variable whose key equals key exactly.
func (s *EnvService) Delete(ctx context.Context, app, key string) (any, error) {
	if err := required("app", app, "key", key); err != nil {
		return nil, err
	}

	vars, err := s.read(ctx, app)
	if err != nil {
		return nil, err
	}

	rest := lo.Filter(vars, func(v map[string]any, _ int) bool {
		return v["key"] != key
	})
	if len(rest) == len(vars) {
		return nil, &toolerr.NotFoundError{
			Code:       CodeEnvVarNotFound,
			Resource:   "environment variable",
			Identifier: key,
			Hints:      []string{"List the app's environment variables to see the exact key names"},
		}
	}

	return s.write(ctx, app, rest)
}

func (s *EnvService) read(ctx context.Context, app string) ([]map[string]any, error) {
	var resp any
	if err := s.client.Get(ctx, path("/v1/apps/%s/environment-variables", app), nil, &resp); err != nil {
		return nil, err
	}
	return envVars(unwrap.Payload(resp, unwrap.Keys(envVarsBodyKey, "variables"))), nil
}

func (s *EnvService) write(ctx context.Context, app string, vars []map[string]any) (any, error) {
	return send(ctx, s.client, http.MethodPut, path("/v1/apps/%s/environment-variables", app),
		map[string]any{envVarsBodyKey: vars})
}

// envVars accepts either a list of {key, value} objects or a key to value
// object and returns the list form.
func envVars(payload any) []map[string]any {
	switch p := payload.(type) {
	case []any:
		return lo.FilterMap(p, func(item any, _ int) (map[string]any, bool) {
			v, ok := item.(map[string]any)
			return v, ok
		})
	case map[string]any:
		keys := lo.Keys(p)
		sort.Strings(keys)
		return lo.Map(keys, func(k string, _ int) map[string]any {
			return map[string]any{"key": k, "value": p[k]}
		})
	default:
		return []map[string]any{}
	}
}
