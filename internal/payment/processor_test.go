package payment_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcallaghan/tradebook/internal/job"
	"github.com/jcallaghan/tradebook/internal/payment"
)

func newProcessor(declineRate float64) *payment.Processor {
	return payment.New(
		payment.WithLatency(0),
		payment.WithDeclineRate(declineRate),
		payment.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
}

func request(method job.PaymentMethod) payment.Request {
	return payment.Request{
		JobID:       uuid.New(),
		Amount:      10000,
		Method:      method,
		Description: "Deposit",
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestProcessor_CashAlwaysSucceeds(t *testing.T) {
	// Even with a certain decline rate, cash settles synchronously.
	p := newProcessor(1.0)

	result := p.Process(context.Background(), request(job.MethodCash))

	assert.True(t, result.Success)
	assert.Equal(t, job.PaymentCompleted, result.Payment.Status)
	assert.NotEmpty(t, result.Payment.TransactionID)
	assert.Empty(t, result.Err)
}

func TestProcessor_GatewaySuccess(t *testing.T) {
	p := newProcessor(0)

	for _, method := range []job.PaymentMethod{job.MethodPayPal, job.MethodGCash, job.MethodCard, job.MethodVenmo} {
		t.Run(string(method), func(t *testing.T) {
			result := p.Process(context.Background(), request(method))

			require.True(t, result.Success)
			assert.Equal(t, job.PaymentCompleted, result.Payment.Status)
			assert.Equal(t, method, result.Payment.Method)
			assert.NotEmpty(t, result.Payment.TransactionID)
		})
	}
}

func TestProcessor_GatewayDecline(t *testing.T) {
	p := newProcessor(1.0)

	result := p.Process(context.Background(), request(job.MethodPayPal))

	assert.False(t, result.Success)
	assert.Equal(t, job.PaymentFailed, result.Payment.Status)
	assert.Empty(t, result.Payment.TransactionID)
	assert.Contains(t, result.Err, "declined")

	// The failed record is complete enough to enter the ledger.
	assert.NotEmpty(t, result.Payment.ID)
	assert.Equal(t, int64(10000), result.Payment.Amount)
}

func TestProcessor_UnknownMethod(t *testing.T) {
	p := newProcessor(0)

	result := p.Process(context.Background(), request(job.PaymentMethod("cheque")))

	assert.False(t, result.Success)
	assert.Equal(t, job.PaymentFailed, result.Payment.Status)
	assert.Contains(t, result.Err, "unsupported payment method")
}

func TestProcessor_ContextCancelled(t *testing.T) {
	p := payment.New(payment.WithLatency(time.Minute), payment.WithDeclineRate(0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := p.Process(ctx, request(job.MethodCard))

	assert.False(t, result.Success)
	assert.Equal(t, job.PaymentFailed, result.Payment.Status)
}

func TestProcessor_ConcurrentGatewayRequests(t *testing.T) {
	// One processor serves every request goroutine; concurrent decline
	// draws must not trip the race detector.
	p := newProcessor(0.5)

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			result := p.Process(context.Background(), request(job.MethodCard))

			if result.Success {
				assert.Equal(t, job.PaymentCompleted, result.Payment.Status)
			} else {
				assert.Equal(t, job.PaymentFailed, result.Payment.Status)
			}
		}()
	}

	wg.Wait()
}

func TestProcessor_DefaultsPaymentDate(t *testing.T) {
	p := newProcessor(0)

	req := request(job.MethodCash)
	req.Date = time.Time{}

	result := p.Process(context.Background(), req)

	require.True(t, result.Success)
	assert.False(t, result.Payment.Date.IsZero())
}
