package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// Orders over this subtotal ship free; everything else pays the flat rate.
	FreeShippingThreshold = 75.0
	FlatShippingRate      = 9.99
	TaxRate               = 0.0875
)

type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// Order is a cart-derived purchase intent. It is built at checkout
// submission, handed to a gateway, and never mutated afterwards.
type Order struct {
	ID           string          `json:"id"`
	Items        []LineItem      `json:"items"`
	Shipping     ShippingAddress `json:"shipping"`
	Subtotal     float64         `json:"subtotal"`
	ShippingCost float64         `json:"shipping_cost"`
	Tax          float64         `json:"tax"`
	Total        float64         `json:"total"`
}

func ShippingCost(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingRate
}

func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// ValidZip accepts 5-digit and 5+4 US postal codes.
func ValidZip(zip string) bool {
	return zipPattern.MatchString(zip)
}

// NewOrderID returns an identifier like ORD-1756700000000-K3F9A01ZQ.
// Unique within a process lifetime; not cryptographically unpredictable.
func NewOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), strings.ToUpper(randBase36(9)))
}
