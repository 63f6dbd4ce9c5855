package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/infrastructure/payment"
	"storefront/internal/service"
)

type Server struct {
	router   *gin.Engine
	proc     *payment.Processor
	notifier service.OrderNotifier
	catalog  *catalog.Catalog
	secrets  map[string]string
	log      *zap.Logger
}

func New(cfg *config.Config, proc *payment.Processor, notifier service.OrderNotifier, cat *catalog.Catalog, log *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:   router,
		proc:     proc,
		notifier: notifier,
		catalog:  cat,
		secrets:  cfg.WebhookSecrets,
		log:      log,
	}

	router.Use(requestID())
	router.Use(s.requestLogger())
	router.Use(cors.Default())

	router.GET("/health", s.handleHealth)
	router.GET("/api/products", s.handleProducts)

	api := router.Group("/api")
	{
		api.POST("/payments/checkout", s.handleCheckout)
		api.POST("/payments/capture", s.handleCapture)
		api.POST("/payments/refund", s.handleRefund)
		api.POST("/webhooks/payments", s.handleWebhook)
	}

	return s
}

// Handler exposes the router for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}

func (s *Server) handleProducts(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.All())
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
