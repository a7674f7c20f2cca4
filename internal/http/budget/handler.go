package budget

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jcallaghan/tradebook/internal/budget"
	"github.com/jcallaghan/tradebook/internal/job"
)

type Handler struct {
	jobs *job.Service
}

func NewHandler(jobs *job.Service) *Handler {
	return &Handler{jobs: jobs}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/categories", h.categories)
	r.Get("/monthly", h.monthly)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, budget.CalculateSummary(jobs))
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	categories := budget.CategorizeExpenses(jobs)
	if categories == nil {
		categories = []budget.Category{}
	}

	writeJSON(w, categories)
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, budget.CalculateMonthlyTrends(jobs))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
