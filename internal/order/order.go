package order

import (
	"strings"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

// Estimated ready-time bands in minutes. Fixed literals, not computed from
// kitchen load.
const (
	PickupWindow   = "20-30"
	DeliveryWindow = "45-60"
)

// Reference derives the printed order reference from a server-issued order
// id: the "LR-" prefix plus the id's first uuid group, uppercased. The id
// itself stays the unique key; the reference is just what the customer
// reads back over the phone.
func Reference(orderID string) string {
	short, _, _ := strings.Cut(orderID, "-")
	return "LR-" + strings.ToUpper(short)
}

// EstimatedWindow returns the ready-time band for a fulfillment method
func EstimatedWindow(t models.OrderType) string {
	if t == models.OrderTypeDelivery {
		return DeliveryWindow
	}
	return PickupWindow
}
