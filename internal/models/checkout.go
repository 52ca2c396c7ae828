package models

import "github.com/shopspring/decimal"

// OrderType is the fulfillment method chosen during checkout
type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

// PaymentMethod is the payment preference collected during checkout.
// Nothing is charged online; payment is collected on handoff.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// CustomerDetails holds the contact information collected by the checkout
// wizard. Address, City and Zip are required for delivery orders only.
type CustomerDetails struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// Totals is the monetary breakdown for a cart. Values are exact; rounding to
// currency precision happens only when amounts are formatted for display.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
}
