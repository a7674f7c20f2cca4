package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcallaghan/tradebook/internal/client"
	clientStore "github.com/jcallaghan/tradebook/internal/client/store"
	"github.com/jcallaghan/tradebook/internal/job"
	jobStore "github.com/jcallaghan/tradebook/internal/job/store"
	"github.com/jcallaghan/tradebook/internal/seed"
	"github.com/jcallaghan/tradebook/internal/storage/memory"
)

func TestBuild_Deterministic(t *testing.T) {
	for _, profile := range []seed.Profile{seed.ProfileMinimal, seed.ProfileFullWorkflow, seed.ProfileEdgeCases} {
		t.Run(string(profile), func(t *testing.T) {
			clients1, jobs1, err := seed.Build(profile)
			require.NoError(t, err)

			clients2, jobs2, err := seed.Build(profile)
			require.NoError(t, err)

			assert.Equal(t, clients1, clients2)
			assert.Equal(t, jobs1, jobs2)
			assert.NotEmpty(t, clients1)
			assert.NotEmpty(t, jobs1)
		})
	}
}

func TestBuild_UnknownProfile(t *testing.T) {
	_, _, err := seed.Build(seed.Profile("bogus"))
	assert.ErrorIs(t, err, seed.ErrUnknownProfile)
}

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	jobs := job.NewService(jobStore.New(store), nil)
	clients := client.NewService(clientStore.New(store))

	require.NoError(t, seed.Apply(ctx, seed.ProfileFullWorkflow, jobs, clients))

	firstJobs, err := jobs.List(ctx)
	require.NoError(t, err)

	firstClients, err := clients.List(ctx)
	require.NoError(t, err)

	require.NoError(t, seed.Apply(ctx, seed.ProfileFullWorkflow, jobs, clients))

	secondJobs, err := jobs.List(ctx)
	require.NoError(t, err)

	secondClients, err := clients.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, firstJobs, secondJobs)
	assert.Equal(t, firstClients, secondClients)
}

func TestBuild_JobsReferenceSeededClients(t *testing.T) {
	clients, jobs, err := seed.Build(seed.ProfileFullWorkflow)
	require.NoError(t, err)

	known := make(map[string]bool, len(clients))
	for _, c := range clients {
		known[c.ID.String()] = true
	}

	for _, j := range jobs {
		assert.True(t, known[j.ClientID.String()], "job %s references unknown client", j.ID)

		// Ledger entries point back at their job.
		for _, p := range j.Payments {
			assert.Equal(t, j.ID, p.JobID)
		}
	}
}

func TestBuild_EdgeCasesKeepOwedNonNegative(t *testing.T) {
	_, jobs, err := seed.Build(seed.ProfileEdgeCases)
	require.NoError(t, err)

	for _, j := range jobs {
		assert.GreaterOrEqual(t, job.AmountOwed(j), int64(0))
	}
}
