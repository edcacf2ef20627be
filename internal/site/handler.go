package site

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"catalogsite/internal/fetch"
	"catalogsite/views/models"
	"catalogsite/views/pages"
)

// Page is one routed page and the containers it mounts, in order.
type Page struct {
	Path       string
	Title      string
	Heading    string
	Containers []string
}

// Pages is the site's fixed page table.
var Pages = []Page{
	{Path: "/", Title: "Home", Heading: "Business software that just works", Containers: []string{ProductsHero, AboutRoot}},
	{Path: "/products", Title: "Products", Heading: "Products", Containers: []string{ProductsHero, ProductsRoot}},
	{Path: "/download", Title: "Download", Heading: "Free Downloads", Containers: []string{DownloadRoot}},
	{Path: "/pricing", Title: "Pricing", Heading: "Pricing", Containers: []string{PricingRoot}},
	{Path: "/releases", Title: "Release Notes", Heading: "Release Notes", Containers: []string{ReleasesRoot}},
	{Path: "/clients", Title: "Our Clients", Heading: "Our Clients", Containers: []string{ClientsGrid}},
	{Path: "/known-issues", Title: "Known Issues", Heading: "Known Issues", Containers: []string{IssuesRoot}},
	{Path: "/about", Title: "About", Heading: "About Us", Containers: []string{AboutRoot}},
	{Path: "/contact", Title: "Contact Us", Heading: "Contact Us", Containers: []string{ContactRoot}},
}

// Handler renders pages and container fragments from the catalog API.
type Handler struct {
	fetch *fetch.Client
	api   Endpoints
	copy  pageCopy
	log   *slog.Logger
}

func NewHandler(fc *fetch.Client, api Endpoints, log *slog.Logger) *Handler {
	pc, err := loadCopy(NewMarkdown())
	if err != nil {
		log.Error("load page copy", "error", err)
	}
	return &Handler{fetch: fc, api: api, copy: pc, log: log}
}

// Routes mounts every page plus the fragment endpoint.
func (h *Handler) Routes(r chi.Router) {
	for _, p := range Pages {
		r.Get(p.Path, h.Page(p))
	}
	r.Get("/fragments/{id}", h.Fragment)
}

// render runs the container tasks concurrently. Each task owns its slot in
// the result and turns its own failure into a message.
func (h *Handler) render(ctx context.Context, ids []string, q url.Values) []pages.Container {
	views := make([]view, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		load, ok := sections[id]
		if !ok {
			views[i] = view{Removed: true}
			continue
		}
		g.Go(func() error {
			views[i] = load(h, ctx, q)
			return nil
		})
	}
	_ = g.Wait()

	containers := make([]pages.Container, 0, len(ids))
	for i, v := range views {
		if v.Removed || v.Body == nil {
			continue
		}
		containers = append(containers, pages.Container{ID: ids[i], Body: v.Body})
	}
	return containers
}

// Page serves a full HTML page.
func (h *Handler) Page(p Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A full page load always starts the slider at slide 0.
		containers := h.render(r.Context(), p.Containers, url.Values{})
		v := models.PageView{Title: p.Title, Path: p.Path, Nav: BuildNav(p.Path)}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := pages.Page(v, p.Heading, containers).Render(r.Context(), w); err != nil {
			h.log.Error("render page", "path", p.Path, "error", err)
		}
	}
}

// Fragment re-renders one container for an HTMX swap.
func (h *Handler) Fragment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	load, ok := sections[id]
	if !ok {
		http.NotFound(w, r)
		return
	}
	v := load(h, r.Context(), r.URL.Query())

	w.Header().Set("Cache-Control", "no-store")
	switch {
	case v.Hold:
		w.WriteHeader(http.StatusNoContent)
		return
	case v.Removed:
		w.Header().Set("HX-Reswap", "delete")
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.Body.Render(r.Context(), w); err != nil {
		h.log.Error("render fragment", "container", id, "error", err)
	}
}
