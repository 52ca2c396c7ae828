package models

// CartLine is one line item in a cart. It carries a copy of the menu item
// with Price overridden by the effective (variant) price at the time the
// line was created. CartID is unique within a cart: one line per distinct
// item+variant combination.
type CartLine struct {
	MenuItem
	CartID          string        `json:"cartId"`
	Quantity        int           `json:"quantity"`
	SelectedVariant *PriceVariant `json:"selectedVariant,omitempty"`
}
