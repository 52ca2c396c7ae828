package checkout

import (
	"errors"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

// Step is one state of the checkout wizard
type Step string

const (
	StepCart    Step = "cart"
	StepMethod  Step = "method"
	StepDetails Step = "details"
	StepPayment Step = "payment"
	StepSuccess Step = "success"
)

var (
	ErrEmptyCart      = errors.New("cart has no items")
	ErrWrongStep      = errors.New("action not available at this step")
	ErrMissingDetails = errors.New("required customer details are missing")
	ErrInvalidChoice  = errors.New("invalid choice")
)

// Flow drives the linear checkout wizard for one session:
//
//	cart -> method -> details -> payment -> success
//
// Back edges run payment -> details -> method -> cart. Closing the drawer
// from any step abandons the attempt: the flow returns to cart and the
// collected details are discarded.
type Flow struct {
	Step         Step
	Open         bool
	OrderType    models.OrderType
	Payment      models.PaymentMethod
	Details      models.CustomerDetails
	Confirmation *models.OrderConfirmation

	defaultDetails models.CustomerDetails
}

// NewFlow creates a flow at the cart step. The default details (typically a
// pre-filled city and zip) are restored whenever the flow resets.
func NewFlow(defaults models.CustomerDetails) *Flow {
	return &Flow{
		Step:           StepCart,
		OrderType:      models.OrderTypePickup,
		Payment:        models.PaymentCard,
		Details:        defaults,
		defaultDetails: defaults,
	}
}

// Begin moves cart -> method. It is only offered for a non-empty cart.
func (f *Flow) Begin(cart *Cart) error {
	if f.Step != StepCart {
		return ErrWrongStep
	}
	if cart.Empty() {
		return ErrEmptyCart
	}
	f.Step = StepMethod
	return nil
}

// SetMethod records the fulfillment method and moves method -> details
func (f *Flow) SetMethod(t models.OrderType) error {
	if f.Step != StepMethod {
		return ErrWrongStep
	}
	if t != models.OrderTypePickup && t != models.OrderTypeDelivery {
		return ErrInvalidChoice
	}
	f.OrderType = t
	f.Step = StepDetails
	return nil
}

// SetDetails records customer details and moves details -> payment.
// Address, city and zip are required only for delivery orders.
func (f *Flow) SetDetails(d models.CustomerDetails) error {
	if f.Step != StepDetails {
		return ErrWrongStep
	}
	if d.FirstName == "" || d.Phone == "" {
		return ErrMissingDetails
	}
	if f.OrderType == models.OrderTypeDelivery {
		if d.Address == "" || d.City == "" || d.Zip == "" {
			return ErrMissingDetails
		}
	}
	f.Details = d
	f.Step = StepPayment
	return nil
}

// SetPayment records the payment preference. The flow stays at payment
// until the order is confirmed.
func (f *Flow) SetPayment(p models.PaymentMethod) error {
	if f.Step != StepPayment {
		return ErrWrongStep
	}
	if p != models.PaymentCard && p != models.PaymentCash {
		return ErrInvalidChoice
	}
	f.Payment = p
	return nil
}

// Complete moves payment -> success with the submission receipt. Success is
// reachable only through this transition.
func (f *Flow) Complete(conf *models.OrderConfirmation) error {
	if f.Step != StepPayment {
		return ErrWrongStep
	}
	f.Confirmation = conf
	f.Step = StepSuccess
	return nil
}

// Back moves one step toward the cart. Previously entered details are kept.
func (f *Flow) Back() error {
	switch f.Step {
	case StepMethod:
		f.Step = StepCart
	case StepDetails:
		f.Step = StepMethod
	case StepPayment:
		f.Step = StepDetails
	default:
		return ErrWrongStep
	}
	return nil
}

// Close abandons the checkout from any step: the wizard returns to cart and
// collected details are discarded. Nothing is persisted.
func (f *Flow) Close() {
	f.Step = StepCart
	f.Open = false
	f.OrderType = models.OrderTypePickup
	f.Payment = models.PaymentCard
	f.Details = f.defaultDetails
	f.Confirmation = nil
}
