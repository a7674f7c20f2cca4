// Package admin exposes the destructive data-management routes: seed
// profiles and full reset. The router keeps these behind bearer auth.
package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jcallaghan/tradebook/internal/client"
	"github.com/jcallaghan/tradebook/internal/job"
	"github.com/jcallaghan/tradebook/internal/seed"
)

type Handler struct {
	jobSvc    *job.Service
	clientSvc *client.Service
}

func NewHandler(jobSvc *job.Service, clientSvc *client.Service) *Handler {
	return &Handler{jobSvc: jobSvc, clientSvc: clientSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/seed/{profile}", h.seed)
	r.Post("/reset", h.reset)
}

type statusResponse struct {
	Status string `json:"status"`
}

// seed replaces both collections with a named profile. Destructive.
func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	profile := seed.Profile(chi.URLParam(r, "profile"))

	if err := seed.Apply(r.Context(), profile, h.jobSvc, h.clientSvc); err != nil {
		if errors.Is(err, seed.ErrUnknownProfile) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, statusResponse{Status: "seeded"})
}

// reset wipes every collection in the durable store. Irreversible.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.jobSvc.ClearAll(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, statusResponse{Status: "reset"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
