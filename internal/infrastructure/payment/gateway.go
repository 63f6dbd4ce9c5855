package payment

import (
	"context"
	"errors"

	"storefront/internal/domain"
)

// Gateway is the uniform adapter contract every payment backend satisfies.
// Session creation always precedes capture for a given checkout; the
// orchestrator enforces that ordering.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, order domain.Order) (domain.CheckoutSession, error)
	Capture(ctx context.Context, transactionID string) (domain.PaymentResult, error)
	Refund(ctx context.Context, transactionID string, amount float64) (domain.PaymentResult, error)
}

// Transport-level failures. A declined capture is NOT one of these: it
// surfaces as a failed PaymentResult with a nil error.
var (
	ErrSessionCreation = errors.New("failed to create checkout session")
	ErrCapture         = errors.New("failed to capture payment")
	ErrRefund          = errors.New("failed to refund payment")
)
