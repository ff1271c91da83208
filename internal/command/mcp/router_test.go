package mcp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	srv, _, m := newTestServer(t, true, nil)

	ts := httptest.NewServer(NewRouter(srv, m))
	t.Cleanup(ts.Close)

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(ts.URL + healthPath)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok\n", string(body))
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(ts.URL + metricsPath)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "go_goroutines")
	})

	t.Run("initialize", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, ts.URL+endpointPath, strings.NewReader(
			`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`,
		))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json, text/event-stream")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), `"serverInfo"`)
		assert.NotEmpty(t, resp.Header.Get("Mcp-Session-Id"))
	})

	t.Run("rejects non-json", func(t *testing.T) {
		resp, err := http.Post(ts.URL+endpointPath, "text/plain", strings.NewReader("hi"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
