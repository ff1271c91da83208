package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveToolCall(t *testing.T) {
	m := New()

	m.ObserveToolCall("apps", OutcomeSuccess, 20*time.Millisecond)
	m.ObserveToolCall("apps", OutcomeSuccess, 30*time.Millisecond)
	m.ObserveToolCall("apps", OutcomeError, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("apps", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toolCalls.WithLabelValues("apps", OutcomeError)))
}

func TestInstrumentTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	m := New()
	client := &http.Client{Transport: m.InstrumentTransport(nil)}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("418", "get")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveToolCall("list_apps", OutcomeSuccess, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `skyport_mcp_tool_calls_total{outcome="success",tool="list_apps"} 1`)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveToolCall("apps", OutcomeSuccess, time.Second)
	})
	assert.Equal(t, http.DefaultTransport, m.InstrumentTransport(http.DefaultTransport))
	assert.Nil(t, m.Registry())
	assert.Nil(t, FromContext(context.Background()))

	ctx := NewContext(context.Background(), New())
	assert.NotNil(t, FromContext(ctx))
}
