package checkout

import (
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/shopspring/decimal"
)

// Cart is an ordered sequence of line items for one session. Lines keep
// insertion order; each distinct item+variant combination occupies exactly
// one line, keyed by cart id.
type Cart struct {
	lines []models.CartLine
}

// CartID derives the line key for an item and optional variant
func CartID(itemID string, variant *models.PriceVariant) string {
	if variant != nil {
		return itemID + "-" + variant.Label
	}
	return itemID
}

// Add puts one unit of the item (with the given variant, if any) in the
// cart. An existing line for the same item+variant has its quantity
// incremented; its stored price is not re-evaluated. A new line gets the
// effective price: variant price when a variant is given, else the base
// price.
func (c *Cart) Add(item models.MenuItem, variant *models.PriceVariant) models.CartLine {
	cartID := CartID(item.ID, variant)

	for i := range c.lines {
		if c.lines[i].CartID == cartID {
			c.lines[i].Quantity++
			return c.lines[i]
		}
	}

	line := models.CartLine{
		MenuItem:        item,
		CartID:          cartID,
		Quantity:        1,
		SelectedVariant: variant,
	}
	if variant != nil {
		line.Price = variant.Price
	}
	c.lines = append(c.lines, line)
	return line
}

// Remove deletes the line with the given cart id. A missing id is a no-op,
// not an error.
func (c *Cart) Remove(cartID string) {
	for i := range c.lines {
		if c.lines[i].CartID == cartID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity applies a signed delta to a line's quantity, clamped at 1.
// Dropping a line requires an explicit Remove. A missing id is a no-op.
func (c *Cart) UpdateQuantity(cartID string, delta int) {
	for i := range c.lines {
		if c.lines[i].CartID == cartID {
			q := c.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
			return
		}
	}
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// TotalCount is the sum of line quantities
func (c *Cart) TotalCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of effective price times quantity over all lines
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

// Clear drops all lines
func (c *Cart) Clear() {
	c.lines = nil
}
