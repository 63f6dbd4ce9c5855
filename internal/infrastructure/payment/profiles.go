package payment

import "time"

// Profile describes one simulated backend: identifier shape, session
// lifetime, artificial latency and capture odds.
type Profile struct {
	Name            string
	Label           string
	Prefix          string
	SessionTTL      time.Duration
	CheckoutLatency time.Duration
	CaptureLatency  time.Duration
	RefundLatency   time.Duration
	CaptureRate     float64
	// PaymentURL, when set, is prepended to the order ID to form the
	// hosted-checkout redirect.
	PaymentURL string
}

type Profiles map[string]Profile

// DefaultProfiles mirrors the behavior of the real (simulated) backends:
// distinct latency, success odds and session lifetime per gateway.
func DefaultProfiles() Profiles {
	return Profiles{
		"mock": {
			Name:            "mock",
			Label:           "Mock",
			Prefix:          "mock",
			SessionTTL:      15 * time.Minute,
			CheckoutLatency: 800 * time.Millisecond,
			CaptureLatency:  1000 * time.Millisecond,
			RefundLatency:   500 * time.Millisecond,
			CaptureRate:     0.90,
		},
		"paymentcloud": {
			Name:            "paymentcloud",
			Label:           "PaymentCloud",
			Prefix:          "pc",
			SessionTTL:      15 * time.Minute,
			CheckoutLatency: 1500 * time.Millisecond,
			CaptureLatency:  2000 * time.Millisecond,
			RefundLatency:   500 * time.Millisecond,
			CaptureRate:     0.95,
			PaymentURL:      "https://secure.paymentcloud.com/checkout/",
		},
		"easypay": {
			Name:            "easypay",
			Label:           "EasyPayDirect",
			Prefix:          "ep",
			SessionTTL:      10 * time.Minute,
			CheckoutLatency: 1200 * time.Millisecond,
			CaptureLatency:  1500 * time.Millisecond,
			RefundLatency:   500 * time.Millisecond,
			CaptureRate:     0.92,
			PaymentURL:      "https://checkout.easypay.com/pay/",
		},
	}
}
