package job_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jcallaghan/tradebook/internal/job"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    job.CreateParams
		setupMock func(m *job.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: job.CreateParams{
				ClientName: "Maria Santos",
				Quote:      50000,
				QuoteDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *job.MockRepository) {
				m.EXPECT().
					CreateJob(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "RepoError",
			params: job.CreateParams{Quote: 500},
			setupMock: func(m *job.MockRepository) {
				m.EXPECT().
					CreateJob(gomock.Any(), gomock.Any()).
					Return(errors.New("storage error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := job.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := job.NewService(repo, nil)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, job.StatusQuoted, got.Status)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestService_Upsert(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *job.MockRepository, j *job.Job)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "UpdatesExisting",
			setupMock: func(m *job.MockRepository, j *job.Job) {
				m.EXPECT().UpdateJob(gomock.Any(), j).Return(nil)
			},
		},
		{
			name: "FallsBackToCreateWhenNeverPersisted",
			setupMock: func(m *job.MockRepository, j *job.Job) {
				m.EXPECT().UpdateJob(gomock.Any(), j).Return(job.ErrNotFound)
				m.EXPECT().CreateJob(gomock.Any(), j).Return(nil)
			},
		},
		{
			name: "StorageErrorsSurface",
			setupMock: func(m *job.MockRepository, j *job.Job) {
				m.EXPECT().UpdateJob(gomock.Any(), j).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := job.NewMockRepository(ctrl)
			j := &job.Job{ID: uuid.New(), Quote: 10000}
			tt.setupMock(repo, j)

			svc := job.NewService(repo, nil)
			err := svc.Upsert(context.Background(), j)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_RecordPayment(t *testing.T) {
	type testCase struct {
		name       string
		initial    *job.Job
		payment    job.Payment
		wantStatus job.Status
	}

	jobID := uuid.New()

	tests := []testCase{
		{
			name:       "SettlingPaymentCompletesJob",
			initial:    &job.Job{ID: jobID, Quote: 53000, Status: job.StatusInProgress},
			payment:    job.Payment{ID: uuid.New(), Amount: 53000, Method: job.MethodCash, Status: job.PaymentCompleted},
			wantStatus: job.StatusCompleted,
		},
		{
			name:       "PartialPaymentKeepsStatus",
			initial:    &job.Job{ID: jobID, Quote: 53000, Status: job.StatusInProgress},
			payment:    job.Payment{ID: uuid.New(), Amount: 10000, Method: job.MethodCash, Status: job.PaymentCompleted},
			wantStatus: job.StatusInProgress,
		},
		{
			name:       "FailedPaymentNeverCompletes",
			initial:    &job.Job{ID: jobID, Quote: 0, Status: job.StatusInProgress},
			payment:    job.Payment{ID: uuid.New(), Amount: 0, Method: job.MethodCard, Status: job.PaymentFailed},
			wantStatus: job.StatusInProgress,
		},
		{
			// Pins current behavior: a settling payment revives even a
			// cancelled job.
			name:       "SettlingPaymentRevivesCancelledJob",
			initial:    &job.Job{ID: jobID, Quote: 20000, Status: job.StatusCancelled},
			payment:    job.Payment{ID: uuid.New(), Amount: 20000, Method: job.MethodCash, Status: job.PaymentCompleted},
			wantStatus: job.StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := job.NewMockRepository(ctrl)
			repo.EXPECT().GetJob(gomock.Any(), jobID).Return(tt.initial, nil)
			repo.EXPECT().UpdateJob(gomock.Any(), gomock.Any()).Return(nil)

			svc := job.NewService(repo, nil)
			got, err := svc.RecordPayment(context.Background(), jobID, tt.payment)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			require.Len(t, got.Payments, 1)
			assert.Equal(t, jobID, got.Payments[0].JobID)
		})
	}
}

func TestService_AddExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	repo := job.NewMockRepository(ctrl)
	repo.EXPECT().GetJob(gomock.Any(), jobID).Return(&job.Job{ID: jobID, Quote: 50000}, nil)
	repo.EXPECT().UpdateJob(gomock.Any(), gomock.Any()).Return(nil)

	svc := job.NewService(repo, nil)
	got, err := svc.AddExpense(context.Background(), jobID, job.ExpenseParams{
		Description: "Timber supplies",
		Amount:      2100,
		Date:        time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, got.Expenses, 1)
	assert.NotEmpty(t, got.Expenses[0].ID)
	assert.Equal(t, int64(2100), got.Expenses[0].Amount)
}

func TestService_SetChecklistItemDone_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	repo := job.NewMockRepository(ctrl)
	repo.EXPECT().GetJob(gomock.Any(), jobID).Return(&job.Job{ID: jobID}, nil)

	svc := job.NewService(repo, nil)
	_, err := svc.SetChecklistItemDone(context.Background(), jobID, uuid.New(), true)

	assert.ErrorIs(t, err, job.ErrNotFound)
}

// failingUploader always fails, standing in for a dead document store.
type failingUploader struct{}

func (failingUploader) Upload(context.Context, string, io.Reader) (string, error) {
	return "", errors.New("upstream unavailable")
}

type okUploader struct{}

func (okUploader) Upload(context.Context, string, io.Reader) (string, error) {
	return "https://docs.example.com/receipts/42", nil
}

func TestService_AttachReceipt(t *testing.T) {
	jobID := uuid.New()
	expenseID := uuid.New()

	makeJob := func() *job.Job {
		return &job.Job{
			ID: jobID,
			Expenses: []job.Expense{
				{ID: expenseID, Description: "Fuel", Amount: 4500, ReceiptLocalURI: "file:///tmp/r.jpg"},
			},
		}
	}

	t.Run("UploadFailureIsSoft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := job.NewMockRepository(ctrl)
		repo.EXPECT().GetJob(gomock.Any(), jobID).Return(makeJob(), nil)

		svc := job.NewService(repo, failingUploader{})
		got, uploaded, err := svc.AttachReceipt(context.Background(), jobID, expenseID, "r.jpg", nil)

		require.NoError(t, err)
		assert.False(t, uploaded)
		assert.Empty(t, got.Expenses[0].ReceiptURL)
		assert.Equal(t, "file:///tmp/r.jpg", got.Expenses[0].ReceiptLocalURI)
	})

	t.Run("UploadSuccessPersistsURL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := job.NewMockRepository(ctrl)
		repo.EXPECT().GetJob(gomock.Any(), jobID).Return(makeJob(), nil)
		repo.EXPECT().UpdateJob(gomock.Any(), gomock.Any()).Return(nil)

		svc := job.NewService(repo, okUploader{})
		got, uploaded, err := svc.AttachReceipt(context.Background(), jobID, expenseID, "r.jpg", nil)

		require.NoError(t, err)
		assert.True(t, uploaded)
		assert.Equal(t, "https://docs.example.com/receipts/42", got.Expenses[0].ReceiptURL)
	})

	t.Run("UnknownExpense", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := job.NewMockRepository(ctrl)
		repo.EXPECT().GetJob(gomock.Any(), jobID).Return(makeJob(), nil)

		svc := job.NewService(repo, okUploader{})
		_, _, err := svc.AttachReceipt(context.Background(), jobID, uuid.New(), "r.jpg", nil)

		assert.ErrorIs(t, err, job.ErrNotFound)
	})
}
