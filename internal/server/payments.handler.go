package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/domain"
)

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

func (s *Server) handleCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Order.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data"})
		return
	}
	if req.Gateway == "" {
		req.Gateway = "mock"
	}

	session, err := s.proc.CreateSession(c.Request.Context(), req.Gateway, req.Order)
	if err != nil {
		s.log.Error("checkout error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (s *Server) handleCapture(c *gin.Context) {
	var req captureRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction ID is required"})
		return
	}
	if req.Gateway == "" {
		req.Gateway = "mock"
	}

	result, err := s.proc.Capture(c.Request.Context(), req.Gateway, req.TransactionID)
	if err != nil {
		s.log.Error("capture error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to capture payment"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleRefund(c *gin.Context) {
	var req refundRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction ID is required"})
		return
	}
	if req.Gateway == "" {
		req.Gateway = "mock"
	}

	result, err := s.proc.Refund(c.Request.Context(), req.Gateway, req.TransactionID, req.Amount)
	if err != nil {
		s.log.Error("refund error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refund payment"})
		return
	}

	c.JSON(http.StatusOK, result)
}
