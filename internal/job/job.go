package job

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the workflow state of a job. Transitions are not
// restricted; the only automatic one is to Completed when a payment
// settles the full balance.
type Status string

const (
	StatusQuoted     Status = "Quoted"
	StatusAccepted   Status = "Accepted"
	StatusInProgress Status = "In-Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Job is a unit of billable work for a client. ClientName is a display
// snapshot taken at creation time and may drift from the live client
// record.
type Job struct {
	ID         uuid.UUID       `json:"id"`
	ClientID   uuid.UUID       `json:"client_id"`
	ClientName string          `json:"client_name"`
	Quote      int64           `json:"quote"` // Amount in cents
	QuoteDate  time.Time       `json:"quote_date"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	Status     Status          `json:"status"`
	Expenses   []Expense       `json:"expenses"`
	Checklist  []ChecklistItem `json:"checklist,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Payments   []Payment       `json:"payments,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Expense is a cost incurred on a job. Reimbursable expenses are billed
// back to the client and so do not reduce profit.
type Expense struct {
	ID              uuid.UUID `json:"id"`
	Description     string    `json:"description"`
	Amount          int64     `json:"amount"` // Amount in cents
	Reimbursable    bool      `json:"reimbursable"`
	Date            time.Time `json:"date"`
	ReceiptURL      string    `json:"receipt_url,omitempty"`
	ReceiptLocalURI string    `json:"receipt_local_uri,omitempty"`
}

// ChecklistItem is a tools/supplies entry on a job.
type ChecklistItem struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentMethod identifies how a payment was made. The set is open but
// fixed from the core's point of view.
type PaymentMethod string

const (
	MethodPayPal PaymentMethod = "paypal"
	MethodGCash  PaymentMethod = "gcash"
	MethodCash   PaymentMethod = "cash"
	MethodCard   PaymentMethod = "card"
	MethodVenmo  PaymentMethod = "venmo"
)

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Payment is a ledger entry on a job. Failed and cancelled entries stay
// in the ledger but never count toward the paid total.
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	JobID         uuid.UUID     `json:"job_id"`
	Amount        int64         `json:"amount"` // Amount in cents
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Date          time.Time     `json:"date"`
	Notes         string        `json:"notes,omitempty"`
}
