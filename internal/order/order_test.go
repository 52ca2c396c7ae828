package order

import (
	"testing"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

func TestReference(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		want    string
	}{
		{
			name:    "uuid first group uppercased",
			orderID: "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
			want:    "LR-A1B2C3D4",
		},
		{
			name:    "id without dashes is used whole",
			orderID: "abc123",
			want:    "LR-ABC123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reference(tt.orderID); got != tt.want {
				t.Errorf("Reference(%s) = %s, want %s", tt.orderID, got, tt.want)
			}
		})
	}
}

func TestEstimatedWindow(t *testing.T) {
	if got := EstimatedWindow(models.OrderTypePickup); got != "20-30" {
		t.Errorf("pickup window = %s, want 20-30", got)
	}
	if got := EstimatedWindow(models.OrderTypeDelivery); got != "45-60" {
		t.Errorf("delivery window = %s, want 45-60", got)
	}
}
