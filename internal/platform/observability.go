package platform

import (
	"context"
	"net/url"
	"strconv"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
)

type ObservabilityService struct {
	client *api.Client
}

type LogsInput struct {
	Lines *int   `json:"lines,omitempty"`
	Since string `json:"since,omitempty"`
	Level string `json:"level,omitempty"`
}

type MetricsInput struct {
	Metric string `json:"metric,omitempty"`
	Period string `json:"period,omitempty"`
}

func (s *ObservabilityService) Logs(ctx context.Context, app string, in LogsInput) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}

	query := url.Values{}
	if in.Lines != nil {
		query.Set("lines", strconv.Itoa(*in.Lines))
	}
	setIf(query, "since", in.Since)
	setIf(query, "level", in.Level)

	return list(ctx, s.client, path("/v1/apps/%s/logs", app), query, "logs")
}

func (s *ObservabilityService) Metrics(ctx context.Context, app string, in MetricsInput) (any, error) {
	if err := required("app", app); err != nil {
		return nil, err
	}

	query := url.Values{}
	setIf(query, "metric", in.Metric)
	setIf(query, "period", in.Period)

	return get(ctx, s.client, path("/v1/apps/%s/metrics", app), query, "metrics")
}

func setIf(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
