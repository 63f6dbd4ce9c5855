package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/domain"
)

var (
	ErrUnknownGateway   = errors.New("unknown gateway")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// handleWebhook authenticates and dispatches asynchronous gateway
// notifications. The raw body is verified before any parsing; the
// response is 200 once dispatch completes, regardless of the business
// outcome, so senders only retry on HTTP failure.
func (s *Server) handleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
		return
	}

	signature := c.GetHeader("x-webhook-signature")
	gateway := c.GetHeader("x-gateway")
	if gateway == "" {
		gateway = "mock"
	}

	if err := s.verifyWebhook(gateway, signature, payload); err != nil {
		switch {
		case errors.Is(err, ErrUnknownGateway):
			s.log.Warn("webhook from unknown gateway", zap.String("gateway", gateway))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown gateway"})
		default:
			s.log.Warn("invalid webhook signature", zap.String("gateway", gateway))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		}
		return
	}

	var event domain.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		s.log.Error("webhook parse error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
		return
	}

	s.dispatch(c, gateway, event)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// verifyWebhook checks the gateway is known and, outside the mock
// development path, that the signature matches the raw payload.
func (s *Server) verifyWebhook(gateway, signature string, payload []byte) error {
	secret, ok := s.secrets[gateway]
	if !ok {
		return ErrUnknownGateway
	}
	if gateway != "mock" && !validSignature(payload, signature, secret) {
		return ErrInvalidSignature
	}
	return nil
}

func (s *Server) dispatch(c *gin.Context, gateway string, event domain.WebhookEvent) {
	ctx := c.Request.Context()
	var err error

	switch event.Event {
	case domain.EventPaymentCompleted, domain.EventPaymentCaptured:
		err = s.notifier.MarkPaid(ctx, event.OrderID, event.TransactionID, event.Amount)
	case domain.EventPaymentFailed:
		err = s.notifier.MarkFailed(ctx, event.OrderID, event.TransactionID, event.Reason)
	case domain.EventPaymentRefunded:
		err = s.notifier.MarkRefunded(ctx, event.OrderID, event.TransactionID, event.RefundAmount)
	default:
		s.log.Info("unhandled webhook event",
			zap.String("event", event.Event),
			zap.String("gateway", gateway),
		)
		return
	}

	// business outcome never changes the acknowledgment
	if err != nil {
		s.log.Error("webhook dispatch error",
			zap.String("event", event.Event),
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
	}
}

// validSignature compares the supplied hex signature against
// HMAC-SHA256(secret, payload) in constant time.
func validSignature(payload []byte, signature, secret string) bool {
	supplied, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hmac.Equal(supplied, mac.Sum(nil))
}
