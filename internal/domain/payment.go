package domain

import (
	"fmt"
	"time"
)

type SessionStatus string

const (
	SessionPending    SessionStatus = "pending"
	SessionProcessing SessionStatus = "processing"
	SessionSucceeded  SessionStatus = "success"
	SessionFailed     SessionStatus = "failed"
)

// CheckoutSession is a short-lived payment intent issued by a gateway.
// Expiry is advisory; nothing blocks a capture on a stale session.
type CheckoutSession struct {
	TransactionID string        `json:"transactionId"`
	Status        SessionStatus `json:"status"`
	PaymentURL    string        `json:"paymentUrl,omitempty"`
	ExpiresAt     time.Time     `json:"expiresAt"`
}

// PaymentResult is the outcome of a single capture or refund attempt.
// A declined capture is a failed result, not an error.
type PaymentResult struct {
	TransactionID string        `json:"transactionId"`
	Status        SessionStatus `json:"status"`
	Amount        float64       `json:"amount"`
	Message       string        `json:"message,omitempty"`
}

// SessionRecord is the processor-side ledger entry for an issued session.
type SessionRecord struct {
	Session   CheckoutSession
	OrderID   string
	Gateway   string
	Amount    float64
	CreatedAt time.Time
}

// NewTransactionID returns an identifier like pc_1756700000000_k3f9a01zq.
func NewTransactionID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), randBase36(9))
}
