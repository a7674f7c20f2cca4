package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jcallaghan/tradebook/internal/importer"
	"github.com/jcallaghan/tradebook/internal/job"
)

type Handler struct {
	importSvc *importer.Service
	jobSvc    *job.Service
}

func NewHandler(importSvc *importer.Service, jobSvc *job.Service) *Handler {
	return &Handler{importSvc: importSvc, jobSvc: jobSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/expenses", h.importExpenses)
}

type importSuccessResponse struct {
	Imported int `json:"imported"`
}

// importExpenses parses the uploaded CSV and appends every row to the
// job named in the form.
func (h *Handler) importExpenses(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	jobID, err := uuid.Parse(r.FormValue("job_id"))
	if err != nil {
		http.Error(w, "job_id field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for _, p := range params {
		if _, err := h.jobSvc.AddExpense(r.Context(), jobID, p); err != nil {
			if errors.Is(err, job.ErrNotFound) {
				http.Error(w, "job not found", http.StatusNotFound)
				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importSuccessResponse{Imported: len(params)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
