package job

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jcallaghan/tradebook/internal/job"
	"github.com/jcallaghan/tradebook/internal/payment"
)

type Handler struct {
	svc       *job.Service
	processor *payment.Processor
}

func NewHandler(svc *job.Service, processor *payment.Processor) *Handler {
	return &Handler{svc: svc, processor: processor}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/expenses", h.addExpense)
	r.Post("/{id}/expenses/{expenseID}/receipt", h.attachReceipt)
	r.Post("/{id}/payments", h.recordPayment)
	r.Post("/{id}/checklist", h.addChecklistItem)
	r.Patch("/{id}/checklist/{itemID}", h.setChecklistItemDone)
}

type createJobRequest struct {
	ClientID   uuid.UUID  `json:"client_id"`
	ClientName string     `json:"client_name"`
	Quote      int64      `json:"quote"`
	QuoteDate  time.Time  `json:"quote_date"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	Status     job.Status `json:"status"`
	Notes      string     `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	j, err := h.svc.Create(r.Context(), job.CreateParams{
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		Quote:      req.Quote,
		QuoteDate:  req.QuoteDate,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(j))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(jobs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	j, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(j))
}

type updateJobRequest struct {
	ClientID   uuid.UUID           `json:"client_id"`
	ClientName string              `json:"client_name"`
	Quote      int64               `json:"quote"`
	QuoteDate  time.Time           `json:"quote_date"`
	StartDate  time.Time           `json:"start_date"`
	EndDate    time.Time           `json:"end_date"`
	Status     job.Status          `json:"status"`
	Expenses   []job.Expense       `json:"expenses"`
	Checklist  []job.ChecklistItem `json:"checklist"`
	Notes      string              `json:"notes"`
	Payments   []job.Payment       `json:"payments"`
	CreatedAt  time.Time           `json:"created_at"`
}

// update replaces the whole record; there is no partial patch.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	j := &job.Job{
		ID:         id,
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		Quote:      req.Quote,
		QuoteDate:  req.QuoteDate,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     req.Status,
		Expenses:   req.Expenses,
		Checklist:  req.Checklist,
		Notes:      req.Notes,
		Payments:   req.Payments,
		CreatedAt:  req.CreatedAt,
	}

	if err := h.svc.Update(r.Context(), j); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(j))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addExpenseRequest struct {
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"`
	Reimbursable    bool      `json:"reimbursable"`
	Date            time.Time `json:"date"`
	ReceiptLocalURI string    `json:"receipt_local_uri"`
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req addExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	j, err := h.svc.AddExpense(r.Context(), id, job.ExpenseParams{
		Description:     req.Description,
		Amount:          req.Amount,
		Reimbursable:    req.Reimbursable,
		Date:            req.Date,
		ReceiptLocalURI: req.ReceiptLocalURI,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(j))
}

type attachReceiptResponse struct {
	Job      jobResponse `json:"job"`
	Uploaded bool        `json:"uploaded"`
}

// attachReceipt uploads the receipt image for an expense. An upload
// failure is soft: 200 with uploaded=false, expense kept local-only.
func (h *Handler) attachReceipt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	expenseID, err := uuid.Parse(chi.URLParam(r, "expenseID"))
	if err != nil {
		http.Error(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	j, uploaded, err := h.svc.AttachReceipt(r.Context(), id, expenseID, header.Filename, file)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, attachReceiptResponse{Job: toResponse(j), Uploaded: uploaded})
}

type recordPaymentRequest struct {
	Amount      int64             `json:"amount"`
	Method      job.PaymentMethod `json:"method"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`

	// RecordFailed keeps declined payments in the ledger.
	RecordFailed bool `json:"record_failed"`
}

type recordPaymentResponse struct {
	Success bool            `json:"success"`
	Payment paymentResponse `json:"payment"`
	Error   string          `json:"error,omitempty"`
	Job     *jobResponse    `json:"job,omitempty"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Check the job exists before simulating gateway latency.
	if _, err := h.svc.Get(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	result := h.processor.Process(r.Context(), payment.Request{
		JobID:       id,
		Amount:      req.Amount,
		Method:      req.Method,
		Description: req.Description,
		Date:        req.Date,
	})

	resp := recordPaymentResponse{
		Success: result.Success,
		Payment: paymentResponse(result.Payment),
		Error:   result.Err,
	}

	// Declined payments only enter the ledger when the caller asked.
	if result.Success || req.RecordFailed {
		j, err := h.svc.RecordPayment(r.Context(), id, result.Payment)
		if err != nil {
			respondError(w, err)
			return
		}

		jr := toResponse(j)
		resp.Job = &jr
	}

	status := http.StatusCreated
	if !result.Success {
		status = http.StatusPaymentRequired
	}

	writeJSON(w, status, resp)
}

type addChecklistItemRequest struct {
	Text string `json:"text"`
}

func (h *Handler) addChecklistItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req addChecklistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	j, err := h.svc.AddChecklistItem(r.Context(), id, req.Text)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(j))
}

type setChecklistItemRequest struct {
	Completed bool `json:"completed"`
}

func (h *Handler) setChecklistItemDone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var req setChecklistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	j, err := h.svc.SetChecklistItemDone(r.Context(), id, itemID, req.Completed)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(j))
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, job.ErrNotFound):
		http.Error(w, "job not found", http.StatusNotFound)
	case errors.Is(err, job.ErrDuplicateID):
		http.Error(w, "job id already exists", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
