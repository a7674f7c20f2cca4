package job

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jcallaghan/tradebook/internal/receipt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=job
type Repository interface {
	ListJobs(ctx context.Context) ([]*Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*Job, error)
	CreateJob(ctx context.Context, j *Job) error
	UpdateJob(ctx context.Context, j *Job) error
	DeleteJob(ctx context.Context, id uuid.UUID) error
	ReplaceJobs(ctx context.Context, jobs []*Job) error
	ClearAll(ctx context.Context) error
}

type Service struct {
	repo     Repository
	uploader receipt.Uploader
}

// NewService wires a job service. uploader may be nil when receipt
// uploads are not configured.
func NewService(repo Repository, uploader receipt.Uploader) *Service {
	return &Service{repo: repo, uploader: uploader}
}

type CreateParams struct {
	ClientID   uuid.UUID
	ClientName string
	Quote      int64
	QuoteDate  time.Time
	StartDate  time.Time
	EndDate    time.Time
	Status     Status
	Notes      string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Job, error) {
	status := params.Status
	if status == "" {
		status = StatusQuoted
	}

	j := &Job{
		ID:         uuid.New(),
		ClientID:   params.ClientID,
		ClientName: params.ClientName,
		Quote:      params.Quote,
		QuoteDate:  params.QuoteDate,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		Status:     status,
		Expenses:   []Expense{},
		Notes:      params.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.CreateJob(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Job, error) {
	return s.repo.GetJob(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Job, error) {
	return s.repo.ListJobs(ctx)
}

// Update replaces the stored record wholesale; there are no partial
// patch semantics.
func (s *Service) Update(ctx context.Context, j *Job) error {
	return s.repo.UpdateJob(ctx, j)
}

// Upsert updates the record, falling back to create when it was never
// persisted. Callers with unknown persistence history rely on this
// succeeding either way.
func (s *Service) Upsert(ctx context.Context, j *Job) error {
	err := s.repo.UpdateJob(ctx, j)
	if err == nil {
		return nil
	}

	if !errors.Is(err, ErrNotFound) {
		return err
	}

	return s.repo.CreateJob(ctx, j)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteJob(ctx, id)
}

func (s *Service) ReplaceAll(ctx context.Context, jobs []*Job) error {
	return s.repo.ReplaceJobs(ctx, jobs)
}

// ClearAll wipes every collection in the durable store, not just jobs.
// Irreversible.
func (s *Service) ClearAll(ctx context.Context) error {
	return s.repo.ClearAll(ctx)
}

type ExpenseParams struct {
	Description     string
	Amount          int64
	Reimbursable    bool
	Date            time.Time
	ReceiptLocalURI string
}

// AddExpense appends an expense to the job and persists the updated
// record.
func (s *Service) AddExpense(ctx context.Context, jobID uuid.UUID, params ExpenseParams) (*Job, error) {
	j, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	j.Expenses = append(j.Expenses, Expense{
		ID:              uuid.New(),
		Description:     params.Description,
		Amount:          params.Amount,
		Reimbursable:    params.Reimbursable,
		Date:            params.Date,
		ReceiptLocalURI: params.ReceiptLocalURI,
	})

	if err := s.repo.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

// AddChecklistItem appends a tools/supplies entry to the job.
func (s *Service) AddChecklistItem(ctx context.Context, jobID uuid.UUID, text string) (*Job, error) {
	j, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	j.Checklist = append(j.Checklist, ChecklistItem{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})

	if err := s.repo.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

// SetChecklistItemDone marks a checklist entry complete or not.
func (s *Service) SetChecklistItemDone(ctx context.Context, jobID, itemID uuid.UUID, done bool) (*Job, error) {
	j, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	found := false

	for i := range j.Checklist {
		if j.Checklist[i].ID == itemID {
			j.Checklist[i].Completed = done
			found = true

			break
		}
	}

	if !found {
		return nil, fmt.Errorf("checklist item %s: %w", itemID, ErrNotFound)
	}

	if err := s.repo.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

// RecordPayment appends a ledger entry and persists the job. When a
// settling payment brings the balance to zero the status is forced to
// Completed, whatever it was before — a cancelled job included.
func (s *Service) RecordPayment(ctx context.Context, jobID uuid.UUID, p Payment) (*Job, error) {
	j, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	p.JobID = j.ID
	j.Payments = append(j.Payments, p)

	if p.Status != PaymentFailed && p.Status != PaymentCancelled && AmountOwed(j) == 0 {
		j.Status = StatusCompleted
	}

	if err := s.repo.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

// AttachReceipt uploads a receipt image for an expense and stores the
// resulting URL. An upload failure is soft: the expense keeps its local
// URI, the job is returned unchanged, and uploaded reports false.
func (s *Service) AttachReceipt(ctx context.Context, jobID, expenseID uuid.UUID, name string, r io.Reader) (j *Job, uploaded bool, err error) {
	j, err = s.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, false, err
	}

	idx := -1

	for i := range j.Expenses {
		if j.Expenses[i].ID == expenseID {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nil, false, fmt.Errorf("expense %s: %w", expenseID, ErrNotFound)
	}

	if s.uploader == nil {
		return j, false, nil
	}

	url, upErr := s.uploader.Upload(ctx, name, r)
	if upErr != nil {
		return j, false, nil
	}

	j.Expenses[idx].ReceiptURL = url

	if err := s.repo.UpdateJob(ctx, j); err != nil {
		return nil, false, err
	}

	return j, true, nil
}
