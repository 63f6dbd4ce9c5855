package server

import (
	"context"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/infrastructure/payment"
	"storefront/internal/repo"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func fastProfiles() payment.Profiles {
	profiles := payment.DefaultProfiles()
	for name, p := range profiles {
		p.CheckoutLatency = 0
		p.CaptureLatency = 0
		p.RefundLatency = 0
		profiles[name] = p
	}
	return profiles
}

type notifierCall struct {
	kind    string
	orderID string
	txnID   string
	amount  float64
	reason  string
}

// recordingNotifier captures dispatched webhook side effects.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []notifierCall
}

func (n *recordingNotifier) MarkPaid(ctx context.Context, orderID, txnID string, amount float64) error {
	n.record(notifierCall{kind: "paid", orderID: orderID, txnID: txnID, amount: amount})
	return nil
}

func (n *recordingNotifier) MarkFailed(ctx context.Context, orderID, txnID, reason string) error {
	n.record(notifierCall{kind: "failed", orderID: orderID, txnID: txnID, reason: reason})
	return nil
}

func (n *recordingNotifier) MarkRefunded(ctx context.Context, orderID, txnID string, amount float64) error {
	n.record(notifierCall{kind: "refunded", orderID: orderID, txnID: txnID, amount: amount})
	return nil
}

func (n *recordingNotifier) record(c notifierCall) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, c)
}

func (n *recordingNotifier) all() []notifierCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notifierCall, len(n.calls))
	copy(out, n.calls)
	return out
}

func newTestServer(t *testing.T) (*httptest.Server, *recordingNotifier) {
	t.Helper()

	cfg := &config.Config{
		WebhookSecrets: map[string]string{
			"mock":         config.MockWebhookSecret,
			"paymentcloud": "pc_test_secret",
			"easypay":      "ep_test_secret",
		},
	}
	proc := payment.NewProcessor(repo.NewSessionRepo(), fastProfiles(), zap.NewNop())
	notifier := &recordingNotifier{}
	srv := New(cfg, proc, notifier, catalog.Default(), zap.NewNop())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, notifier
}
