// Package seed builds deterministic demo/test data. Every id and date
// is fixed, so applying a profile twice produces identical collections.
// Applying a profile replaces both the job and client collections —
// strictly a test/demo tool.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jcallaghan/tradebook/internal/client"
	"github.com/jcallaghan/tradebook/internal/job"
)

type Profile string

const (
	ProfileMinimal      Profile = "minimal"
	ProfileFullWorkflow Profile = "fullWorkflow"
	ProfileEdgeCases    Profile = "edgeCases"
)

var ErrUnknownProfile = fmt.Errorf("unknown seed profile")

func id(s string) uuid.UUID { return uuid.MustParse(s) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Build returns the client and job collections for a profile.
func Build(profile Profile) ([]*client.Client, []*job.Job, error) {
	switch profile {
	case ProfileMinimal:
		return minimal()
	case ProfileFullWorkflow:
		return fullWorkflow()
	case ProfileEdgeCases:
		return edgeCases()
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownProfile, profile)
	}
}

// JobReplacer and ClientReplacer are the slices of the services Apply
// needs.
type JobReplacer interface {
	ReplaceAll(ctx context.Context, jobs []*job.Job) error
}

type ClientReplacer interface {
	ReplaceAll(ctx context.Context, clients []*client.Client) error
}

// Apply replaces both collections with the profile's data. Destructive.
func Apply(ctx context.Context, profile Profile, jobs JobReplacer, clients ClientReplacer) error {
	cs, js, err := Build(profile)
	if err != nil {
		return err
	}

	if err := clients.ReplaceAll(ctx, cs); err != nil {
		return fmt.Errorf("seeding clients: %w", err)
	}

	if err := jobs.ReplaceAll(ctx, js); err != nil {
		return fmt.Errorf("seeding jobs: %w", err)
	}

	return nil
}

func minimal() ([]*client.Client, []*job.Job, error) {
	c := &client.Client{
		ID:           id("0b8f1d3e-0001-4000-8000-000000000001"),
		FullName:     "Maria Santos",
		Address:      "12 Harbour St",
		PhoneNumber:  "+1 555 0101",
		EmailAddress: "maria@example.com",
		CreatedAt:    date(2025, time.January, 6),
	}

	j := &job.Job{
		ID:         id("0b8f1d3e-0002-4000-8000-000000000001"),
		ClientID:   c.ID,
		ClientName: c.FullName,
		Quote:      25000,
		QuoteDate:  date(2025, time.January, 10),
		StartDate:  date(2025, time.January, 15),
		EndDate:    date(2025, time.January, 20),
		Status:     job.StatusQuoted,
		Expenses:   []job.Expense{},
		CreatedAt:  date(2025, time.January, 10),
	}

	return []*client.Client{c}, []*job.Job{j}, nil
}

func fullWorkflow() ([]*client.Client, []*job.Job, error) {
	carla := &client.Client{
		ID:           id("1c7a2b4d-0001-4000-8000-000000000001"),
		FullName:     "Carla Mendes",
		Address:      "88 Gardener Ave",
		PhoneNumber:  "+1 555 0102",
		EmailAddress: "carla@example.com",
		CreatedAt:    date(2025, time.February, 1),
	}

	tom := &client.Client{
		ID:           id("1c7a2b4d-0001-4000-8000-000000000002"),
		FullName:     "Tom Reilly",
		Address:      "4 Quarry Rd",
		PhoneNumber:  "+1 555 0103",
		EmailAddress: "tom@example.com",
		CreatedAt:    date(2025, time.February, 3),
	}

	quoted := &job.Job{
		ID:         id("1c7a2b4d-0002-4000-8000-000000000001"),
		ClientID:   carla.ID,
		ClientName: carla.FullName,
		Quote:      120000,
		QuoteDate:  date(2025, time.March, 1),
		StartDate:  date(2025, time.March, 10),
		EndDate:    date(2025, time.March, 24),
		Status:     job.StatusQuoted,
		Expenses:   []job.Expense{},
		Notes:      "Deck rebuild, pending client sign-off",
		CreatedAt:  date(2025, time.March, 1),
	}

	inProgress := &job.Job{
		ID:         id("1c7a2b4d-0002-4000-8000-000000000002"),
		ClientID:   tom.ID,
		ClientName: tom.FullName,
		Quote:      80000,
		QuoteDate:  date(2025, time.March, 5),
		StartDate:  date(2025, time.March, 12),
		EndDate:    date(2025, time.April, 2),
		Status:     job.StatusInProgress,
		Expenses: []job.Expense{
			{
				ID:          id("1c7a2b4d-0003-4000-8000-000000000001"),
				Description: "Fuel to site",
				Amount:      4500,
				Date:        date(2025, time.March, 12),
			},
			{
				ID:           id("1c7a2b4d-0003-4000-8000-000000000002"),
				Description:  "Timber supplies",
				Amount:       21000,
				Reimbursable: true,
				Date:         date(2025, time.March, 13),
			},
		},
		Checklist: []job.ChecklistItem{
			{
				ID:        id("1c7a2b4d-0004-4000-8000-000000000001"),
				Text:      "Circular saw",
				Completed: true,
				CreatedAt: date(2025, time.March, 11),
			},
			{
				ID:        id("1c7a2b4d-0004-4000-8000-000000000002"),
				Text:      "Deck screws, 500 pack",
				CreatedAt: date(2025, time.March, 11),
			},
		},
		Payments: []job.Payment{
			{
				ID:            id("1c7a2b4d-0005-4000-8000-000000000001"),
				JobID:         id("1c7a2b4d-0002-4000-8000-000000000002"),
				Amount:        40000,
				Method:        job.MethodCard,
				Status:        job.PaymentCompleted,
				TransactionID: "CARD-SEED00000001",
				Date:          date(2025, time.March, 14),
				Notes:         "Deposit",
			},
		},
		CreatedAt: date(2025, time.March, 5),
	}

	completed := &job.Job{
		ID:         id("1c7a2b4d-0002-4000-8000-000000000003"),
		ClientID:   carla.ID,
		ClientName: carla.FullName,
		Quote:      50000,
		QuoteDate:  date(2025, time.January, 20),
		StartDate:  date(2025, time.January, 25),
		EndDate:    date(2025, time.February, 2),
		Status:     job.StatusCompleted,
		Expenses: []job.Expense{
			{
				ID:          id("1c7a2b4d-0003-4000-8000-000000000003"),
				Description: "Parking near site",
				Amount:      1500,
				Date:        date(2025, time.January, 26),
			},
		},
		Payments: []job.Payment{
			{
				ID:            id("1c7a2b4d-0005-4000-8000-000000000002"),
				JobID:         id("1c7a2b4d-0002-4000-8000-000000000003"),
				Amount:        50000,
				Method:        job.MethodCash,
				Status:        job.PaymentCompleted,
				TransactionID: "CASH-SEED00000002",
				Date:          date(2025, time.February, 2),
			},
		},
		CreatedAt: date(2025, time.January, 20),
	}

	cancelled := &job.Job{
		ID:         id("1c7a2b4d-0002-4000-8000-000000000004"),
		ClientID:   tom.ID,
		ClientName: tom.FullName,
		Quote:      30000,
		QuoteDate:  date(2025, time.February, 10),
		StartDate:  date(2025, time.February, 17),
		EndDate:    date(2025, time.February, 19),
		Status:     job.StatusCancelled,
		Expenses:   []job.Expense{},
		Notes:      "Client postponed indefinitely",
		CreatedAt:  date(2025, time.February, 10),
	}

	return []*client.Client{carla, tom},
		[]*job.Job{quoted, inProgress, completed, cancelled},
		nil
}

func edgeCases() ([]*client.Client, []*job.Job, error) {
	ghost := &client.Client{
		ID:        id("2d9c3e5f-0001-4000-8000-000000000001"),
		FullName:  "N. O. Contact",
		CreatedAt: date(2025, time.April, 1),
	}

	zeroQuote := &job.Job{
		ID:         id("2d9c3e5f-0002-4000-8000-000000000001"),
		ClientID:   ghost.ID,
		ClientName: ghost.FullName,
		Quote:      0,
		QuoteDate:  date(2025, time.April, 2),
		StartDate:  date(2025, time.April, 2),
		EndDate:    date(2025, time.April, 2),
		Status:     job.StatusAccepted,
		Expenses: []job.Expense{
			{
				ID:          id("2d9c3e5f-0003-4000-8000-000000000001"),
				Description: "Goodwill repair materials",
				Amount:      2500,
				Date:        date(2025, time.April, 2),
			},
		},
		CreatedAt: date(2025, time.April, 2),
	}

	// Paid more than owed; owed must still floor at zero.
	overpaid := &job.Job{
		ID:         id("2d9c3e5f-0002-4000-8000-000000000002"),
		ClientID:   ghost.ID,
		ClientName: ghost.FullName,
		Quote:      10000,
		QuoteDate:  date(2025, time.April, 5),
		StartDate:  date(2025, time.April, 6),
		EndDate:    date(2025, time.April, 7),
		Status:     job.StatusCompleted,
		Expenses:   []job.Expense{},
		Payments: []job.Payment{
			{
				ID:            id("2d9c3e5f-0005-4000-8000-000000000001"),
				JobID:         id("2d9c3e5f-0002-4000-8000-000000000002"),
				Amount:        15000,
				Method:        job.MethodVenmo,
				Status:        job.PaymentCompleted,
				TransactionID: "VENMO-SEED0000003",
				Date:          date(2025, time.April, 7),
			},
		},
		CreatedAt: date(2025, time.April, 5),
	}

	// A failed payment alongside a settled one; only the latter counts.
	declined := &job.Job{
		ID:         id("2d9c3e5f-0002-4000-8000-000000000003"),
		ClientID:   ghost.ID,
		ClientName: ghost.FullName,
		Quote:      20000,
		QuoteDate:  date(2025, time.April, 10),
		StartDate:  date(2025, time.April, 11),
		EndDate:    date(2025, time.April, 15),
		Status:     job.StatusInProgress,
		Expenses:   []job.Expense{},
		Payments: []job.Payment{
			{
				ID:     id("2d9c3e5f-0005-4000-8000-000000000002"),
				JobID:  id("2d9c3e5f-0002-4000-8000-000000000003"),
				Amount: 20000,
				Method: job.MethodPayPal,
				Status: job.PaymentFailed,
				Date:   date(2025, time.April, 12),
				Notes:  "paypal payment declined",
			},
			{
				ID:            id("2d9c3e5f-0005-4000-8000-000000000003"),
				JobID:         id("2d9c3e5f-0002-4000-8000-000000000003"),
				Amount:        5000,
				Method:        job.MethodGCash,
				Status:        job.PaymentCompleted,
				TransactionID: "GCASH-SEED0000004",
				Date:          date(2025, time.April, 13),
			},
		},
		CreatedAt: date(2025, time.April, 10),
	}

	return []*client.Client{ghost},
		[]*job.Job{zeroQuote, overpaid, declined},
		nil
}
