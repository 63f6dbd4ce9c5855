package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/domain"
)

// proxyGateway routes every call through the server-side payment
// endpoints, keeping gateway credentials out of the calling context. Used
// by the paymentcloud and easypay variants.
type proxyGateway struct {
	name    string
	baseURL string
	client  *http.Client
}

func newProxyGateway(name, baseURL string) *proxyGateway {
	return &proxyGateway{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type checkoutRequest struct {
	Order   domain.Order `json:"order"`
	Gateway string       `json:"gateway"`
}

type captureRequest struct {
	TransactionID string `json:"transactionId"`
	Gateway       string `json:"gateway"`
}

type refundRequest struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Gateway       string  `json:"gateway"`
}

func (g *proxyGateway) CreateCheckoutSession(ctx context.Context, order domain.Order) (domain.CheckoutSession, error) {
	var session domain.CheckoutSession
	err := g.post(ctx, "/api/payments/checkout", checkoutRequest{Order: order, Gateway: g.name}, &session)
	if err != nil {
		return domain.CheckoutSession{}, fmt.Errorf("%w: %v", ErrSessionCreation, err)
	}
	return session, nil
}

func (g *proxyGateway) Capture(ctx context.Context, transactionID string) (domain.PaymentResult, error) {
	var result domain.PaymentResult
	err := g.post(ctx, "/api/payments/capture", captureRequest{TransactionID: transactionID, Gateway: g.name}, &result)
	if err != nil {
		return domain.PaymentResult{}, fmt.Errorf("%w: %v", ErrCapture, err)
	}
	return result, nil
}

func (g *proxyGateway) Refund(ctx context.Context, transactionID string, amount float64) (domain.PaymentResult, error) {
	var result domain.PaymentResult
	err := g.post(ctx, "/api/payments/refund", refundRequest{TransactionID: transactionID, Amount: amount, Gateway: g.name}, &result)
	if err != nil {
		return domain.PaymentResult{}, fmt.Errorf("%w: %v", ErrRefund, err)
	}
	return result, nil
}

func (g *proxyGateway) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
