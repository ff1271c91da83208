package mcp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"

	"github.com/skyport-cloud/skyport-mcp/internal/metrics"
)

const (
	endpointPath = "/mcp"
	metricsPath  = "/metrics"
	healthPath   = "/healthz"
)

// NewRouter serves srv over streamable HTTP next to the metrics and health
// endpoints.
func NewRouter(srv *server.MCPServer, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get(healthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})

	r.Handle(metricsPath, m.Handler())

	r.Handle(endpointPath, server.NewStreamableHTTPServer(srv,
		server.WithEndpointPath(endpointPath),
	))

	return r
}
