package main

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"catalogsite/internal/catalog"
	mcpserver "catalogsite/internal/mcp"
	"catalogsite/internal/site"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/mark3labs/mcp-go/server"
)

// newRouter mounts the JSON API, the HTMX pages and the MCP endpoint.
// Pages and fragments are rate limited per client IP. The JSON API is not:
// the pages fetch it from this process, so every such call arrives from
// the server's own address.
func newRouter(logger *slog.Logger, svc *catalog.Service, pages *site.Handler, rateLimit int) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(site.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Heartbeat("/health"))

	// Static files
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	files := http.FileServer(http.FS(sub))
	r.Handle("/static/*", http.StripPrefix("/static/", files))
	r.Handle("/assets/img/*", http.StripPrefix("/assets/", files))

	// JSON API
	api := catalog.NewHandler(svc, logger)
	r.Get("/api/software.json", api.Software)
	r.Get("/api/clients.json", api.Clients)
	r.Get("/api/known_issues.json", api.Issues)
	r.Get("/api/releases.json", api.Releases)

	// HTMX pages
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(rateLimit, time.Minute))
		pages.Routes(r)
	})

	// MCP endpoint (HTTP transport)
	// MCP uses POST for requests and GET for SSE streams
	mcpHTTP := server.NewStreamableHTTPServer(mcpserver.NewServer(svc))
	r.Method(http.MethodPost, "/mcp", mcpHTTP)
	r.Method(http.MethodGet, "/mcp", mcpHTTP)
	r.Method(http.MethodDelete, "/mcp", mcpHTTP)

	return r, nil
}
