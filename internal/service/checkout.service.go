package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/domain"
	"storefront/internal/infrastructure/payment"
)

type Stage string

const (
	StageShipping   Stage = "collecting-shipping"
	StagePayment    Stage = "collecting-payment"
	StageReview     Stage = "reviewing"
	StageSubmitting Stage = "submitting"
	StageSucceeded  Stage = "succeeded"
)

var (
	ErrMissingFields = errors.New("all required fields must be filled in")
	ErrInvalidZip    = errors.New("invalid ZIP code")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrWrongStage    = errors.New("operation not allowed in current stage")
	ErrPaymentFailed = errors.New("payment failed")
)

type ShippingForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Zip       string
}

// PaymentForm collects card fields. Only presence is validated; no real
// processor is wired in, so format and checksum checks are skipped.
type PaymentForm struct {
	CardNumber string
	ExpiryDate string
	CVV        string
	CardName   string
}

// Checkout drives one order through a strictly linear flow:
// collecting-shipping -> collecting-payment -> reviewing -> submitting ->
// succeeded. A failed submission returns to reviewing so the whole
// submission can be retried; nothing carries over between attempts.
type Checkout struct {
	cart    *cart.Store
	gateway payment.Gateway
	log     *zap.Logger

	stage    Stage
	shipping ShippingForm
	card     PaymentForm
}

func NewCheckout(store *cart.Store, gateway payment.Gateway, log *zap.Logger) *Checkout {
	return &Checkout{
		cart:    store,
		gateway: gateway,
		log:     log,
		stage:   StageShipping,
	}
}

func (c *Checkout) Stage() Stage {
	return c.stage
}

// SetShipping validates the shipping form and advances to payment
// collection. A rejected form leaves the stage unchanged.
func (c *Checkout) SetShipping(form ShippingForm) error {
	if c.stage != StageShipping {
		return ErrWrongStage
	}
	required := []string{form.FirstName, form.LastName, form.Email, form.Address, form.City, form.State, form.Zip}
	for _, v := range required {
		if v == "" {
			return ErrMissingFields
		}
	}
	if !domain.ValidZip(form.Zip) {
		return ErrInvalidZip
	}
	c.shipping = form
	c.stage = StagePayment
	return nil
}

// SetPayment validates presence of the card fields and advances to review.
func (c *Checkout) SetPayment(form PaymentForm) error {
	if c.stage != StagePayment {
		return ErrWrongStage
	}
	required := []string{form.CardNumber, form.ExpiryDate, form.CVV, form.CardName}
	for _, v := range required {
		if v == "" {
			return ErrMissingFields
		}
	}
	c.card = form
	c.stage = StageReview
	return nil
}

// Back steps to the previous collection stage. Submission is never
// reversible.
func (c *Checkout) Back() {
	switch c.stage {
	case StagePayment:
		c.stage = StageShipping
	case StageReview:
		c.stage = StagePayment
	}
}

// Submit places the order: create a checkout session, then capture it, in
// that order. On success the cart is cleared and the new order ID
// returned. On any failure the stage resets to reviewing and the whole
// submission may be retried; each retry performs a fresh session + capture.
func (c *Checkout) Submit(ctx context.Context) (string, error) {
	if c.stage != StageReview {
		return "", ErrWrongStage
	}
	if len(c.cart.Items()) == 0 {
		return "", ErrEmptyCart
	}
	c.stage = StageSubmitting

	order := c.buildOrder()

	session, err := c.gateway.CreateCheckoutSession(ctx, order)
	if err != nil {
		c.stage = StageReview
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	result, err := c.gateway.Capture(ctx, session.TransactionID)
	if err != nil {
		c.stage = StageReview
		return "", fmt.Errorf("capture payment: %w", err)
	}

	if result.Status != domain.SessionSucceeded {
		c.stage = StageReview
		c.log.Warn("payment declined",
			zap.String("order_id", order.ID),
			zap.String("transaction_id", result.TransactionID),
		)
		return "", ErrPaymentFailed
	}

	c.cart.Clear()
	c.stage = StageSucceeded

	c.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("transaction_id", result.TransactionID),
		zap.Float64("total", order.Total),
	)

	return order.ID, nil
}

func (c *Checkout) buildOrder() domain.Order {
	subtotal := c.cart.Subtotal()
	shippingCost := domain.ShippingCost(subtotal)
	tax := domain.Tax(subtotal)

	return domain.Order{
		ID:    domain.NewOrderID(),
		Items: c.cart.Lines(),
		Shipping: domain.ShippingAddress{
			Name:    c.shipping.FirstName + " " + c.shipping.LastName,
			Address: c.shipping.Address,
			City:    c.shipping.City,
			State:   c.shipping.State,
			Zip:     c.shipping.Zip,
		},
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Tax:          tax,
		Total:        subtotal + shippingCost + tax,
	}
}
