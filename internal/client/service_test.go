package client_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jcallaghan/tradebook/internal/client"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := client.NewMockRepository(ctrl)
	repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil)

	svc := client.NewService(repo)
	got, err := svc.Create(context.Background(), client.CreateParams{
		FullName:     "Maria Santos",
		EmailAddress: "maria@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestService_UpdateKeepsCreatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	repo := client.NewMockRepository(ctrl)
	repo.EXPECT().
		GetClient(gomock.Any(), id).
		Return(&client.Client{ID: id, FullName: "Maria", CreatedAt: created}, nil)
	repo.EXPECT().
		UpdateClient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *client.Client) error {
			assert.Equal(t, created, c.CreatedAt)
			return nil
		})

	svc := client.NewService(repo)

	// The caller's CreatedAt is ignored; the stored one wins.
	err := svc.Update(context.Background(), &client.Client{
		ID:        id,
		FullName:  "Maria Santos",
		CreatedAt: time.Now(),
	})

	require.NoError(t, err)
}

func TestService_UpsertCreatesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := &client.Client{ID: uuid.New(), FullName: "Tom Reilly"}

	repo := client.NewMockRepository(ctrl)
	repo.EXPECT().GetClient(gomock.Any(), c.ID).Return(nil, client.ErrNotFound)
	repo.EXPECT().CreateClient(gomock.Any(), c).Return(nil)

	svc := client.NewService(repo)
	require.NoError(t, svc.Upsert(context.Background(), c))
}
