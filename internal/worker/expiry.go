package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/repo"
)

// ExpiryWorker periodically marks stale pending sessions as failed.
// Session expiry is advisory (nothing blocks a capture on a stale
// session); the sweep only keeps the ledger honest for operators.
type ExpiryWorker struct {
	sessions repo.SessionRepo
	interval time.Duration
	log      *zap.Logger
}

func NewExpiryWorker(sessions repo.SessionRepo, interval time.Duration, log *zap.Logger) *ExpiryWorker {
	return &ExpiryWorker{
		sessions: sessions,
		interval: interval,
		log:      log,
	}
}

func (w *ExpiryWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("session expiry worker started")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				w.log.Error("session expiry sweep failed", zap.Error(err))
			}
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) error {
	expired, err := w.sessions.FindExpiredPending(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, rec := range expired {
		if err := w.sessions.UpdateStatus(ctx, rec.Session.TransactionID, domain.SessionFailed); err != nil {
			w.log.Error("failed to expire session",
				zap.String("transaction_id", rec.Session.TransactionID),
				zap.Error(err),
			)
			continue
		}
		w.log.Info("expired checkout session",
			zap.String("transaction_id", rec.Session.TransactionID),
			zap.String("order_id", rec.OrderID),
			zap.String("gateway", rec.Gateway),
		)
	}
	return nil
}
