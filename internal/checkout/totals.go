package checkout

import (
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/shopspring/decimal"
)

// Rates holds the configured pricing rates applied at checkout
type Rates struct {
	TaxRate     decimal.Decimal
	DeliveryFee decimal.Decimal
}

// Totals derives the monetary breakdown for a cart and fulfillment method.
// It is recomputed on every call, never cached. No intermediate rounding is
// applied; callers round only when formatting for display.
func (r Rates) Totals(c *Cart, orderType models.OrderType) models.Totals {
	subtotal := c.Subtotal()
	tax := subtotal.Mul(r.TaxRate)

	fee := decimal.Zero
	if orderType == models.OrderTypeDelivery {
		fee = r.DeliveryFee
	}

	return models.Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal.Add(tax).Add(fee),
	}
}
