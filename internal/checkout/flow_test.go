package checkout

import (
	"errors"
	"testing"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

var testDefaults = models.CustomerDetails{City: "West Hempstead", Zip: "11552"}

func cartWithItem(t *testing.T) *Cart {
	t.Helper()
	cart := &Cart{}
	cart.Add(pastaItem(), nil)
	return cart
}

func TestFlowHappyPath(t *testing.T) {
	f := NewFlow(testDefaults)
	cart := cartWithItem(t)

	if f.Step != StepCart {
		t.Fatalf("initial step = %s, want cart", f.Step)
	}

	if err := f.Begin(cart); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if f.Step != StepMethod {
		t.Fatalf("step = %s, want method", f.Step)
	}

	if err := f.SetMethod(models.OrderTypePickup); err != nil {
		t.Fatalf("SetMethod: %v", err)
	}
	if f.Step != StepDetails {
		t.Fatalf("step = %s, want details", f.Step)
	}

	if err := f.SetDetails(models.CustomerDetails{FirstName: "Tony", Phone: "516-555-0100"}); err != nil {
		t.Fatalf("SetDetails: %v", err)
	}
	if f.Step != StepPayment {
		t.Fatalf("step = %s, want payment", f.Step)
	}

	if err := f.SetPayment(models.PaymentCash); err != nil {
		t.Fatalf("SetPayment: %v", err)
	}
	if f.Step != StepPayment {
		t.Fatalf("step = %s, SetPayment must not advance", f.Step)
	}

	conf := &models.OrderConfirmation{Reference: "LR-TEST"}
	if err := f.Complete(conf); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if f.Step != StepSuccess {
		t.Fatalf("step = %s, want success", f.Step)
	}
	if f.Confirmation != conf {
		t.Error("confirmation not recorded")
	}
}

func TestFlowBeginRequiresItems(t *testing.T) {
	f := NewFlow(testDefaults)

	err := f.Begin(&Cart{})
	if !errors.Is(err, ErrEmptyCart) {
		t.Errorf("err = %v, want ErrEmptyCart", err)
	}
	if f.Step != StepCart {
		t.Errorf("step = %s, want cart", f.Step)
	}
}

func TestFlowRejectsOutOfOrderActions(t *testing.T) {
	f := NewFlow(testDefaults)

	tests := []struct {
		name string
		call func() error
	}{
		{"method before begin", func() error { return f.SetMethod(models.OrderTypePickup) }},
		{"details before begin", func() error { return f.SetDetails(models.CustomerDetails{FirstName: "A", Phone: "1"}) }},
		{"payment before begin", func() error { return f.SetPayment(models.PaymentCard) }},
		{"complete before begin", func() error { return f.Complete(nil) }},
		{"back at cart", func() error { return f.Back() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrWrongStep) {
				t.Errorf("err = %v, want ErrWrongStep", err)
			}
		})
	}
}

func TestFlowSetMethodValidatesChoice(t *testing.T) {
	f := NewFlow(testDefaults)
	if err := f.Begin(cartWithItem(t)); err != nil {
		t.Fatal(err)
	}

	if err := f.SetMethod("drone"); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("err = %v, want ErrInvalidChoice", err)
	}
	if f.Step != StepMethod {
		t.Errorf("step = %s, want method", f.Step)
	}
}

func TestFlowDeliveryRequiresAddress(t *testing.T) {
	tests := []struct {
		name    string
		details models.CustomerDetails
		wantErr error
	}{
		{
			name:    "missing name",
			details: models.CustomerDetails{Phone: "516-555-0100", Address: "1 Main St", City: "Hempstead", Zip: "11550"},
			wantErr: ErrMissingDetails,
		},
		{
			name:    "missing address",
			details: models.CustomerDetails{FirstName: "Tony", Phone: "516-555-0100", City: "Hempstead", Zip: "11550"},
			wantErr: ErrMissingDetails,
		},
		{
			name:    "missing zip",
			details: models.CustomerDetails{FirstName: "Tony", Phone: "516-555-0100", Address: "1 Main St", City: "Hempstead"},
			wantErr: ErrMissingDetails,
		},
		{
			name:    "complete",
			details: models.CustomerDetails{FirstName: "Tony", Phone: "516-555-0100", Address: "1 Main St", City: "Hempstead", Zip: "11550"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlow(testDefaults)
			if err := f.Begin(cartWithItem(t)); err != nil {
				t.Fatal(err)
			}
			if err := f.SetMethod(models.OrderTypeDelivery); err != nil {
				t.Fatal(err)
			}

			err := f.SetDetails(tt.details)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFlowPickupSkipsAddressCheck(t *testing.T) {
	f := NewFlow(testDefaults)
	if err := f.Begin(cartWithItem(t)); err != nil {
		t.Fatal(err)
	}
	if err := f.SetMethod(models.OrderTypePickup); err != nil {
		t.Fatal(err)
	}

	if err := f.SetDetails(models.CustomerDetails{FirstName: "Tony", Phone: "516-555-0100"}); err != nil {
		t.Errorf("SetDetails: %v", err)
	}
}

func TestFlowBackKeepsDetails(t *testing.T) {
	f := NewFlow(testDefaults)
	if err := f.Begin(cartWithItem(t)); err != nil {
		t.Fatal(err)
	}
	if err := f.SetMethod(models.OrderTypePickup); err != nil {
		t.Fatal(err)
	}
	details := models.CustomerDetails{FirstName: "Maria", Phone: "516-555-0101"}
	if err := f.SetDetails(details); err != nil {
		t.Fatal(err)
	}

	// payment -> details -> method -> cart
	for _, want := range []Step{StepDetails, StepMethod, StepCart} {
		if err := f.Back(); err != nil {
			t.Fatalf("Back: %v", err)
		}
		if f.Step != want {
			t.Fatalf("step = %s, want %s", f.Step, want)
		}
	}

	if f.Details.FirstName != "Maria" {
		t.Errorf("details discarded on back: %+v", f.Details)
	}
}

func TestFlowCloseResetsFromAnyStep(t *testing.T) {
	steps := []func(f *Flow, cart *Cart){
		func(f *Flow, cart *Cart) {},
		func(f *Flow, cart *Cart) { f.Begin(cart) },
		func(f *Flow, cart *Cart) { f.Begin(cart); f.SetMethod(models.OrderTypeDelivery) },
		func(f *Flow, cart *Cart) {
			f.Begin(cart)
			f.SetMethod(models.OrderTypeDelivery)
			f.SetDetails(models.CustomerDetails{FirstName: "Tony", Phone: "1", Address: "1 Main St", City: "Hempstead", Zip: "11550"})
		},
	}

	for i, setup := range steps {
		f := NewFlow(testDefaults)
		f.Open = true
		setup(f, cartWithItem(t))

		f.Close()

		if f.Step != StepCart {
			t.Errorf("case %d: step = %s, want cart", i, f.Step)
		}
		if f.Open {
			t.Errorf("case %d: drawer still open", i)
		}
		if f.OrderType != models.OrderTypePickup || f.Payment != models.PaymentCard {
			t.Errorf("case %d: choices not reset: %s/%s", i, f.OrderType, f.Payment)
		}
		if f.Details != testDefaults {
			t.Errorf("case %d: details = %+v, want defaults", i, f.Details)
		}
		if f.Confirmation != nil {
			t.Errorf("case %d: confirmation not cleared", i)
		}
	}
}
