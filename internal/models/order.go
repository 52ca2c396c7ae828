package models

import "time"

// Order is a confirmed order handed to the fulfillment system
type Order struct {
	ID        string          `json:"id"`
	Reference string          `json:"reference"`
	Type      OrderType       `json:"type"`
	Payment   PaymentMethod   `json:"payment"`
	Customer  CustomerDetails `json:"customer"`
	Lines     []CartLine      `json:"lines"`
	Totals    Totals          `json:"totals"`
	PlacedAt  time.Time       `json:"placedAt"`
}

// OrderConfirmation is the receipt returned to the customer after a
// successful submission. EstimatedMinutes is a "low-high" band.
type OrderConfirmation struct {
	OrderID          string        `json:"orderId"`
	Reference        string        `json:"reference"`
	Type             OrderType     `json:"type"`
	Payment          PaymentMethod `json:"payment"`
	Totals           Totals        `json:"totals"`
	AmountDue        string        `json:"amountDue"`
	EstimatedMinutes string        `json:"estimatedMinutes"`
}
