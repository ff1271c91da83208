package api

import (
	"context"
	"net/http"
	"time"

	"github.com/skyport-cloud/skyport-mcp/internal/logger"
)

type contextKey struct {
	name string
}

var contextKeyRequestStart = &contextKey{"RequestStart"}

// LoggingTransport logs every request and response at debug level.
type LoggingTransport struct {
	innerTransport http.RoundTripper
	logger         *logger.Logger
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := context.WithValue(req.Context(), contextKeyRequestStart, time.Now())
	req = req.WithContext(ctx)

	t.logRequest(req)

	resp, err := t.innerTransport.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	t.logResponse(resp)

	return resp, err
}

func (t *LoggingTransport) logRequest(req *http.Request) {
	t.logger.Debugf("--> %s %s", req.Method, redact(req))
}

func (t *LoggingTransport) logResponse(resp *http.Response) {
	ctx := resp.Request.Context()
	if start, ok := ctx.Value(contextKeyRequestStart).(time.Time); ok {
		t.logger.Debugf("<-- %d %s (%s)", resp.StatusCode, redact(resp.Request), time.Since(start).Round(time.Millisecond))
	} else {
		t.logger.Debugf("<-- %d %s", resp.StatusCode, redact(resp.Request))
	}
}

// redact drops the query string, which may carry the team scope.
func redact(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}
