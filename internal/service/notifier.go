package service

import (
	"context"

	"go.uber.org/zap"
)

// OrderNotifier receives the order-state side effects of verified webhook
// events. The real fulfillment pipeline (status storage, confirmation
// email, inventory) lives behind this interface.
type OrderNotifier interface {
	MarkPaid(ctx context.Context, orderID, transactionID string, amount float64) error
	MarkFailed(ctx context.Context, orderID, transactionID, reason string) error
	MarkRefunded(ctx context.Context, orderID, transactionID string, amount float64) error
}

// LogNotifier is the development implementation: every notification is a
// log line and nothing else.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) MarkPaid(ctx context.Context, orderID, transactionID string, amount float64) error {
	n.log.Info("payment completed",
		zap.String("order_id", orderID),
		zap.String("transaction_id", transactionID),
		zap.Float64("amount", amount),
	)
	return nil
}

func (n *LogNotifier) MarkFailed(ctx context.Context, orderID, transactionID, reason string) error {
	n.log.Info("payment failed",
		zap.String("order_id", orderID),
		zap.String("transaction_id", transactionID),
		zap.String("reason", reason),
	)
	return nil
}

func (n *LogNotifier) MarkRefunded(ctx context.Context, orderID, transactionID string, amount float64) error {
	n.log.Info("payment refunded",
		zap.String("order_id", orderID),
		zap.String("transaction_id", transactionID),
		zap.Float64("amount", amount),
	)
	return nil
}
