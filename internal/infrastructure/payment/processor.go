package payment

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/repo"
)

// Processor simulates the server side of every gateway: it issues
// sessions, settles captures against each profile's odds and answers
// refunds. Capture outcomes are remembered per transaction, so a repeated
// capture of the same transaction returns the recorded result instead of
// rolling again.
type Processor struct {
	profiles Profiles
	sessions repo.SessionRepo
	log      *zap.Logger

	mu       sync.RWMutex
	captures map[string]domain.PaymentResult
}

func NewProcessor(sessions repo.SessionRepo, profiles Profiles, log *zap.Logger) *Processor {
	return &Processor{
		profiles: profiles,
		sessions: sessions,
		log:      log,
		captures: make(map[string]domain.PaymentResult),
	}
}

// profile resolves a gateway name; unrecognized names behave as mock.
func (p *Processor) profile(gateway string) Profile {
	if prof, ok := p.profiles[gateway]; ok {
		return prof
	}
	return p.profiles["mock"]
}

func (p *Processor) CreateSession(ctx context.Context, gateway string, order domain.Order) (domain.CheckoutSession, error) {
	prof := p.profile(gateway)

	if err := sleep(ctx, prof.CheckoutLatency); err != nil {
		return domain.CheckoutSession{}, err
	}

	session := domain.CheckoutSession{
		TransactionID: domain.NewTransactionID(prof.Prefix),
		Status:        domain.SessionPending,
		ExpiresAt:     time.Now().Add(prof.SessionTTL),
	}
	if prof.PaymentURL != "" {
		session.PaymentURL = prof.PaymentURL + order.ID
	}

	rec := domain.SessionRecord{
		Session:   session,
		OrderID:   order.ID,
		Gateway:   prof.Name,
		Amount:    order.Total,
		CreatedAt: time.Now(),
	}
	if err := p.sessions.Save(ctx, &rec); err != nil {
		return domain.CheckoutSession{}, err
	}

	p.log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("transaction_id", session.TransactionID),
		zap.Float64("total", order.Total),
		zap.String("gateway", prof.Name),
	)

	return session, nil
}

func (p *Processor) Capture(ctx context.Context, gateway, transactionID string) (domain.PaymentResult, error) {
	prof := p.profile(gateway)

	// naive idempotency lookup: settled transactions keep their outcome
	p.mu.RLock()
	if result, ok := p.captures[transactionID]; ok {
		p.mu.RUnlock()
		return result, nil
	}
	p.mu.RUnlock()

	if err := sleep(ctx, prof.CaptureLatency); err != nil {
		return domain.PaymentResult{}, err
	}

	status := domain.SessionFailed
	if rand.Float64() < prof.CaptureRate {
		status = domain.SessionSucceeded
	}

	result := domain.PaymentResult{
		TransactionID: transactionID,
		Status:        status,
		Amount:        0, // the order total is never threaded through a capture
		Message:       prof.Label + " capture completed",
	}

	p.mu.Lock()
	p.captures[transactionID] = result
	p.mu.Unlock()

	_ = p.sessions.UpdateStatus(ctx, transactionID, status)

	p.log.Info("payment capture",
		zap.String("transaction_id", transactionID),
		zap.String("status", string(status)),
		zap.String("gateway", prof.Name),
	)

	return result, nil
}

func (p *Processor) Refund(ctx context.Context, gateway, transactionID string, amount float64) (domain.PaymentResult, error) {
	prof := p.profile(gateway)

	if err := sleep(ctx, prof.RefundLatency); err != nil {
		return domain.PaymentResult{}, err
	}

	result := domain.PaymentResult{
		TransactionID: transactionID,
		Status:        domain.SessionSucceeded,
		Amount:        amount,
		Message:       prof.Label + " refund processed",
	}

	p.log.Info("payment refund",
		zap.String("transaction_id", transactionID),
		zap.Float64("amount", amount),
		zap.String("gateway", prof.Name),
	)

	return result, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
