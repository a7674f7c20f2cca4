package job

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcallaghan/tradebook/internal/job"
)

type expenseResponse struct {
	ID              uuid.UUID `json:"id"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"`
	Reimbursable    bool      `json:"reimbursable"`
	Date            time.Time `json:"date"`
	ReceiptURL      string    `json:"receipt_url,omitempty"`
	ReceiptLocalURI string    `json:"receipt_local_uri,omitempty"`
}

type checklistItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type paymentResponse struct {
	ID            uuid.UUID         `json:"id"`
	JobID         uuid.UUID         `json:"job_id"`
	Amount        int64             `json:"amount"`
	Method        job.PaymentMethod `json:"method"`
	Status        job.PaymentStatus `json:"status"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Date          time.Time         `json:"date"`
	Notes         string            `json:"notes,omitempty"`
}

type jobResponse struct {
	ID         uuid.UUID               `json:"id"`
	ClientID   uuid.UUID               `json:"client_id"`
	ClientName string                  `json:"client_name"`
	Quote      int64                   `json:"quote"`
	QuoteDate  time.Time               `json:"quote_date"`
	StartDate  time.Time               `json:"start_date"`
	EndDate    time.Time               `json:"end_date"`
	Status     job.Status              `json:"status"`
	Expenses   []expenseResponse       `json:"expenses"`
	Checklist  []checklistItemResponse `json:"checklist,omitempty"`
	Notes      string                  `json:"notes,omitempty"`
	Payments   []paymentResponse       `json:"payments,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`

	// Derived figures, computed per response.
	TotalExpenses int64 `json:"total_expenses"`
	Profit        int64 `json:"profit"`
	TotalDue      int64 `json:"total_due"`
	TotalPaid     int64 `json:"total_paid"`
	AmountOwed    int64 `json:"amount_owed"`
}

func toResponse(j *job.Job) jobResponse {
	resp := jobResponse{
		ID:            j.ID,
		ClientID:      j.ClientID,
		ClientName:    j.ClientName,
		Quote:         j.Quote,
		QuoteDate:     j.QuoteDate,
		StartDate:     j.StartDate,
		EndDate:       j.EndDate,
		Status:        j.Status,
		Expenses:      make([]expenseResponse, 0, len(j.Expenses)),
		Notes:         j.Notes,
		CreatedAt:     j.CreatedAt,
		TotalExpenses: job.TotalExpenses(j),
		Profit:        job.Profit(j),
		TotalDue:      job.TotalDue(j),
		TotalPaid:     job.TotalPaid(j),
		AmountOwed:    job.AmountOwed(j),
	}

	for _, e := range j.Expenses {
		resp.Expenses = append(resp.Expenses, expenseResponse(e))
	}

	for _, item := range j.Checklist {
		resp.Checklist = append(resp.Checklist, checklistItemResponse(item))
	}

	for _, p := range j.Payments {
		resp.Payments = append(resp.Payments, paymentResponse(p))
	}

	return resp
}

func toResponseList(jobs []*job.Job) []jobResponse {
	resp := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = toResponse(j)
	}

	return resp
}
