package payment

import (
	"context"
	"time"

	"FitGenius-Backend/domain"

	"github.com/google/uuid"
)

type (
	// PaymentGateway charges a checkout request. The demo ships with a
	// simulated gateway; the midtrans implementation sits behind the same
	// interface for real deployments.
	PaymentGateway interface {
		Charge(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResult, error)
	}

	mockGateway struct {
		delay time.Duration
	}
)

// processingDelay simulates gateway latency before the unconditional
// approval.
const processingDelay = 2500 * time.Millisecond

func NewMockGateway() PaymentGateway {
	return &mockGateway{delay: processingDelay}
}

// Charge always succeeds; the simulated flow models no failure path.
func (g *mockGateway) Charge(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResult, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.PaymentResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	return domain.PaymentResult{
		Success:   true,
		Reference: uuid.New().String(),
	}, nil
}
