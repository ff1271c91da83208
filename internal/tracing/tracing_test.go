package tracing

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportedSpans(t *testing.T) {
	var buf bytes.Buffer

	tp, err := InitTraceProvider(context.Background(), true, &buf)
	require.NoError(t, err)

	_, span := StartToolSpan(context.Background(), "apps", "list")
	RecordError(span, errors.New("boom"), "tool failed")
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"Name": "tool apps"`)
	assert.Contains(t, out, "mcp.action")
	assert.Contains(t, out, "boom")
}

func TestTransportPropagatesTraceContext(t *testing.T) {
	tp, err := InitTraceProvider(context.Background(), false, nil)
	require.NoError(t, err)
	defer tp.Shutdown(context.Background())

	var traceparent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceparent = r.Header.Get("Traceparent")
	}))
	defer server.Close()

	ctx, span := StartToolSpan(context.Background(), "list_apps", "")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := (&http.Client{Transport: Transport(http.DefaultTransport)}).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, traceparent, span.SpanContext().TraceID().String())
}
