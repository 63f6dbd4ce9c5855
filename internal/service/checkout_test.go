package service

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/domain"
)

// stubGateway scripts capture outcomes per call and records every order
// it was handed.
type stubGateway struct {
	sessionErr error
	captureErr error
	outcomes   []domain.SessionStatus

	sessions int
	captures int
	orders   []domain.Order
}

func (g *stubGateway) CreateCheckoutSession(ctx context.Context, order domain.Order) (domain.CheckoutSession, error) {
	if g.sessionErr != nil {
		return domain.CheckoutSession{}, g.sessionErr
	}
	g.sessions++
	g.orders = append(g.orders, order)
	return domain.CheckoutSession{
		TransactionID: fmt.Sprintf("mock_%d_aaaaaaaaa", g.sessions),
		Status:        domain.SessionPending,
	}, nil
}

func (g *stubGateway) Capture(ctx context.Context, transactionID string) (domain.PaymentResult, error) {
	if g.captureErr != nil {
		return domain.PaymentResult{}, g.captureErr
	}
	status := domain.SessionSucceeded
	if g.captures < len(g.outcomes) {
		status = g.outcomes[g.captures]
	}
	g.captures++
	return domain.PaymentResult{TransactionID: transactionID, Status: status}, nil
}

func (g *stubGateway) Refund(ctx context.Context, transactionID string, amount float64) (domain.PaymentResult, error) {
	return domain.PaymentResult{TransactionID: transactionID, Status: domain.SessionSucceeded, Amount: amount}, nil
}

func filledCart() *cart.Store {
	s := cart.NewStore()
	s.Add(catalog.Product{ID: "1", Title: "Flower", Price: 40}, 1)
	s.Add(catalog.Product{ID: "2", Title: "Vape", Price: 60}, 1)
	return s
}

func validShipping() ShippingForm {
	return ShippingForm{
		FirstName: "Avery",
		LastName:  "Stone",
		Email:     "avery@example.com",
		Address:   "100 Main St",
		City:      "Los Angeles",
		State:     "CA",
		Zip:       "90210",
	}
}

func validCard() PaymentForm {
	return PaymentForm{CardNumber: "4242424242424242", ExpiryDate: "12/29", CVV: "123", CardName: "Avery Stone"}
}

func readyCheckout(t *testing.T, store *cart.Store, gw *stubGateway) *Checkout {
	t.Helper()
	c := NewCheckout(store, gw, zap.NewNop())
	require.NoError(t, c.SetShipping(validShipping()))
	require.NoError(t, c.SetPayment(validCard()))
	require.Equal(t, StageReview, c.Stage())
	return c
}

func TestShippingZipValidation(t *testing.T) {
	cases := []struct {
		zip string
		ok  bool
	}{
		{"90210", true},
		{"90210-1234", true},
		{"9021", false},
		{"ABCDE", false},
	}

	for _, tc := range cases {
		t.Run(tc.zip, func(t *testing.T) {
			c := NewCheckout(filledCart(), &stubGateway{}, zap.NewNop())
			form := validShipping()
			form.Zip = tc.zip
			err := c.SetShipping(form)
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, StagePayment, c.Stage())
			} else {
				assert.ErrorIs(t, err, ErrInvalidZip)
				// rejected transition leaves the stage unchanged
				assert.Equal(t, StageShipping, c.Stage())
			}
		})
	}
}

func TestShippingRequiresAllFields(t *testing.T) {
	c := NewCheckout(filledCart(), &stubGateway{}, zap.NewNop())
	form := validShipping()
	form.Email = ""
	assert.ErrorIs(t, c.SetShipping(form), ErrMissingFields)
	assert.Equal(t, StageShipping, c.Stage())

	// phone is optional
	form = validShipping()
	form.Phone = ""
	assert.NoError(t, c.SetShipping(form))
}

func TestPaymentRequiresAllFields(t *testing.T) {
	c := NewCheckout(filledCart(), &stubGateway{}, zap.NewNop())
	require.NoError(t, c.SetShipping(validShipping()))

	form := validCard()
	form.CVV = ""
	assert.ErrorIs(t, c.SetPayment(form), ErrMissingFields)
	assert.Equal(t, StagePayment, c.Stage())
}

func TestStageOrderEnforced(t *testing.T) {
	c := NewCheckout(filledCart(), &stubGateway{}, zap.NewNop())

	assert.ErrorIs(t, c.SetPayment(validCard()), ErrWrongStage)

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrWrongStage)
}

func TestBack(t *testing.T) {
	c := NewCheckout(filledCart(), &stubGateway{}, zap.NewNop())
	require.NoError(t, c.SetShipping(validShipping()))
	require.NoError(t, c.SetPayment(validCard()))

	c.Back()
	assert.Equal(t, StagePayment, c.Stage())
	c.Back()
	assert.Equal(t, StageShipping, c.Stage())
	c.Back()
	assert.Equal(t, StageShipping, c.Stage())
}

func TestSubmitSuccess(t *testing.T) {
	gw := &stubGateway{}
	store := filledCart()
	c := readyCheckout(t, store, gw)

	orderID, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-\d+-[A-Z0-9]{9}$`), orderID)
	assert.Equal(t, StageSucceeded, c.Stage())
	assert.Empty(t, store.Items(), "cart is cleared on success")

	require.Len(t, gw.orders, 1)
	order := gw.orders[0]
	assert.Equal(t, orderID, order.ID)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 100, order.Subtotal, 1e-9)
	assert.InDelta(t, 0, order.ShippingCost, 1e-9) // free over $75
	assert.InDelta(t, 8.75, order.Tax, 1e-9)
	assert.InDelta(t, 108.75, order.Total, 1e-9)
	assert.Equal(t, "Avery Stone", order.Shipping.Name)
	assert.Equal(t, "90210", order.Shipping.Zip)
}

func TestSubmitAddsShippingUnderThreshold(t *testing.T) {
	gw := &stubGateway{}
	store := cart.NewStore()
	store.Add(catalog.Product{ID: "1", Title: "Gummies", Price: 30}, 1)
	c := readyCheckout(t, store, gw)

	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	order := gw.orders[0]
	assert.InDelta(t, domain.FlatShippingRate, order.ShippingCost, 1e-9)
	assert.InDelta(t, 30+9.99+30*domain.TaxRate, order.Total, 1e-9)
}

func TestSubmitDeclineIsRetryable(t *testing.T) {
	gw := &stubGateway{outcomes: []domain.SessionStatus{domain.SessionFailed, domain.SessionSucceeded}}
	store := filledCart()
	c := readyCheckout(t, store, gw)

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrPaymentFailed)
	assert.Equal(t, StageReview, c.Stage())
	assert.Len(t, store.Items(), 2, "cart survives a failed submission")

	orderID, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)

	// each attempt performs a fresh session + capture pair
	assert.Equal(t, 2, gw.sessions)
	assert.Equal(t, 2, gw.captures)
	assert.NotEqual(t, gw.orders[0].ID, gw.orders[1].ID)
}

func TestSubmitSessionCreationFailure(t *testing.T) {
	gw := &stubGateway{sessionErr: fmt.Errorf("connection refused")}
	store := filledCart()
	c := readyCheckout(t, store, gw)

	_, err := c.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StageReview, c.Stage())
	assert.Len(t, store.Items(), 2)
}

func TestSubmitCaptureTransportFailure(t *testing.T) {
	gw := &stubGateway{captureErr: fmt.Errorf("timeout")}
	c := readyCheckout(t, filledCart(), gw)

	_, err := c.Submit(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPaymentFailed)
	assert.Equal(t, StageReview, c.Stage())
}

func TestSubmitEmptyCart(t *testing.T) {
	gw := &stubGateway{}
	c := readyCheckout(t, filledCart(), gw)

	// someone empties the cart between review and submit
	c.cart.Clear()

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, gw.sessions)
}
