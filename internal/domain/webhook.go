package domain

// Webhook event types recognized by the receiver. Anything else is
// acknowledged and dropped.
const (
	EventPaymentCompleted = "payment.completed"
	EventPaymentCaptured  = "payment.captured"
	EventPaymentFailed    = "payment.failed"
	EventPaymentRefunded  = "payment.refunded"
)

// WebhookEvent is an inbound gateway notification. Parsed only after the
// raw body passes signature verification.
type WebhookEvent struct {
	Event         string  `json:"event"`
	TransactionID string  `json:"transactionId"`
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount,omitempty"`
	Reason        string  `json:"reason,omitempty"`
	RefundAmount  float64 `json:"refundAmount,omitempty"`
}
