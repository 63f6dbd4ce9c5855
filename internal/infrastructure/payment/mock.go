package payment

import (
	"context"

	"storefront/internal/domain"
)

// mockGateway talks to the processor in-process. Development-only: no
// server boundary, no credentials, signature checks skipped downstream.
type mockGateway struct {
	proc *Processor
}

func NewMockGateway(proc *Processor) Gateway {
	return &mockGateway{proc: proc}
}

func (g *mockGateway) CreateCheckoutSession(ctx context.Context, order domain.Order) (domain.CheckoutSession, error) {
	return g.proc.CreateSession(ctx, "mock", order)
}

func (g *mockGateway) Capture(ctx context.Context, transactionID string) (domain.PaymentResult, error) {
	return g.proc.Capture(ctx, "mock", transactionID)
}

func (g *mockGateway) Refund(ctx context.Context, transactionID string, amount float64) (domain.PaymentResult, error) {
	return g.proc.Refund(ctx, "mock", transactionID, amount)
}
