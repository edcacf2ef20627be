package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Software handles GET /api/software.json
func (h *Handler) Software(w http.ResponseWriter, r *http.Request) {
	serveList(h, w, r, "software", h.svc.Software)
}

// Clients handles GET /api/clients.json
func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	serveList(h, w, r, "clients", h.svc.Clients)
}

// Issues handles GET /api/known_issues.json
func (h *Handler) Issues(w http.ResponseWriter, r *http.Request) {
	serveList(h, w, r, "known issues", h.svc.Issues)
}

// Releases handles GET /api/releases.json
func (h *Handler) Releases(w http.ResponseWriter, r *http.Request) {
	serveList(h, w, r, "releases", h.svc.Releases)
}

func serveList[T any](h *Handler, w http.ResponseWriter, r *http.Request, what string, list func(context.Context) ([]T, error)) {
	items, err := list(r.Context())
	if err != nil {
		h.log.Error("failed to list "+what, "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []T{}
	}
	h.jsonResponse(w, Document[T]{Items: items}, http.StatusOK)
}

// --- Helper methods ---

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Warn("failed to encode response", "error", err)
	}
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
