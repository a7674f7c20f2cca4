// Package payment simulates per-method settlement. Outcomes never cross
// the boundary as Go errors: every call returns a Result, and a decline
// carries the failed ledger entry so callers can choose to record it.
package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jcallaghan/tradebook/internal/job"
)

type Request struct {
	JobID       uuid.UUID
	Amount      int64 // Amount in cents
	Method      job.PaymentMethod
	Description string
	Date        time.Time
}

// Result is the discriminated settlement outcome. On decline, Payment
// holds a failed ledger entry and Err the reason.
type Result struct {
	Success bool
	Payment job.Payment
	Err     string
}

type Processor struct {
	latency     time.Duration
	declineRate float64

	// rngMu serializes draws: rand.Rand is not safe for concurrent
	// use and one Processor serves every request goroutine.
	rngMu sync.Mutex
	rng   *rand.Rand
}

type Option func(*Processor)

// WithLatency sets the simulated network delay for non-cash methods.
func WithLatency(d time.Duration) Option {
	return func(p *Processor) { p.latency = d }
}

// WithDeclineRate sets the probability in [0,1] that a non-cash payment
// is declined.
func WithDeclineRate(rate float64) Option {
	return func(p *Processor) { p.declineRate = rate }
}

// WithRand injects the random source, letting tests force outcomes.
func WithRand(rng *rand.Rand) Option {
	return func(p *Processor) { p.rng = rng }
}

func New(opts ...Option) *Processor {
	p := &Processor{
		latency:     800 * time.Millisecond,
		declineRate: 0.1,
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process settles a payment request. Cash settles synchronously and
// always succeeds; the simulated gateways wait out the configured
// latency and then either settle or decline.
func (p *Processor) Process(ctx context.Context, req Request) Result {
	switch req.Method {
	case job.MethodCash:
		return Result{Success: true, Payment: p.settled(req)}
	case job.MethodPayPal, job.MethodGCash, job.MethodCard, job.MethodVenmo:
		return p.simulate(ctx, req)
	default:
		return Result{
			Success: false,
			Payment: p.failed(req),
			Err:     fmt.Sprintf("unsupported payment method: %s", req.Method),
		}
	}
}

func (p *Processor) simulate(ctx context.Context, req Request) Result {
	select {
	case <-time.After(p.latency):
	case <-ctx.Done():
		return Result{
			Success: false,
			Payment: p.failed(req),
			Err:     ctx.Err().Error(),
		}
	}

	if p.draw() < p.declineRate {
		return Result{
			Success: false,
			Payment: p.failed(req),
			Err:     fmt.Sprintf("%s payment declined", req.Method),
		}
	}

	return Result{Success: true, Payment: p.settled(req)}
}

func (p *Processor) draw() float64 {
	p.rngMu.Lock()
	defer p.rngMu.Unlock()

	return p.rng.Float64()
}

func (p *Processor) settled(req Request) job.Payment {
	pay := p.entry(req)
	pay.Status = job.PaymentCompleted
	pay.TransactionID = transactionID(req.Method)

	return pay
}

func (p *Processor) failed(req Request) job.Payment {
	pay := p.entry(req)
	pay.Status = job.PaymentFailed

	return pay
}

func (p *Processor) entry(req Request) job.Payment {
	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	return job.Payment{
		ID:     uuid.New(),
		JobID:  req.JobID,
		Amount: req.Amount,
		Method: req.Method,
		Date:   date,
		Notes:  req.Description,
	}
}

func transactionID(method job.PaymentMethod) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	return fmt.Sprintf("%s-%s", strings.ToUpper(string(method)), frag)
}
