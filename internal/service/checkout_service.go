package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/larosas-pizzeria/ordering-api/internal/checkout"
	"github.com/larosas-pizzeria/ordering-api/internal/menu"
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/internal/order"
	"github.com/larosas-pizzeria/ordering-api/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownVariant  = errors.New("unknown price variant")
)

// CartView is the session snapshot returned after every cart or checkout
// operation: the lines, freshly derived totals, and where the wizard stands.
type CartView struct {
	SessionID    string                    `json:"sessionId"`
	Lines        []models.CartLine         `json:"lines"`
	TotalCount   int                       `json:"totalCount"`
	Totals       models.Totals             `json:"totals"`
	Step         checkout.Step             `json:"step"`
	Open         bool                      `json:"open"`
	OrderType    models.OrderType          `json:"orderType"`
	Payment      models.PaymentMethod      `json:"payment"`
	Details      models.CustomerDetails    `json:"details"`
	Confirmation *models.OrderConfirmation `json:"confirmation,omitempty"`
}

// CheckoutService owns per-session carts and drives the checkout wizard
type CheckoutService struct {
	menuRepo      repository.MenuRepository
	sessions      *checkout.Store
	rates         checkout.Rates
	submitter     order.Submitter
	submitTimeout time.Duration
	defaults      models.CustomerDetails
	log           *slog.Logger
}

// NewCheckoutService creates a checkout service
func NewCheckoutService(menuRepo repository.MenuRepository, rates checkout.Rates, submitter order.Submitter, submitTimeout time.Duration, defaultCity, defaultZip string, log *slog.Logger) *CheckoutService {
	return &CheckoutService{
		menuRepo:      menuRepo,
		sessions:      checkout.NewStore(),
		rates:         rates,
		submitter:     submitter,
		submitTimeout: submitTimeout,
		defaults: models.CustomerDetails{
			City: defaultCity,
			Zip:  defaultZip,
		},
		log: log,
	}
}

// CreateSession registers a new ordering session
func (s *CheckoutService) CreateSession() *checkout.Session {
	return s.sessions.Create(s.defaults)
}

func (s *CheckoutService) session(id string) (*checkout.Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *CheckoutService) view(sess *checkout.Session) *CartView {
	return &CartView{
		SessionID:    sess.ID,
		Lines:        sess.Cart.Lines(),
		TotalCount:   sess.Cart.TotalCount(),
		Totals:       s.rates.Totals(sess.Cart, sess.Flow.OrderType),
		Step:         sess.Flow.Step,
		Open:         sess.Flow.Open,
		OrderType:    sess.Flow.OrderType,
		Payment:      sess.Flow.Payment,
		Details:      sess.Flow.Details,
		Confirmation: sess.Flow.Confirmation,
	}
}

// View returns the current snapshot of a session
func (s *CheckoutService) View(sessionID string) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()
	return s.view(sess), nil
}

// AddItem puts one unit of an item in the session's cart. For an item with
// variants, variantLabel selects the price option; an empty label takes the
// item's default (first) variant. A successful add opens the cart drawer.
func (s *CheckoutService) AddItem(ctx context.Context, sessionID, itemID, variantLabel string) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var variant *models.PriceVariant
	if variantLabel != "" {
		v, ok := menu.FindVariant(*item, variantLabel)
		if !ok {
			return nil, ErrUnknownVariant
		}
		variant = v
	} else if len(item.Variants) > 0 {
		first := item.Variants[0]
		variant = &first
	}

	sess.Lock()
	defer sess.Unlock()

	line := sess.Cart.Add(*item, variant)
	sess.Flow.Open = true

	s.log.Info("item added to cart",
		"session_id", sess.ID,
		"cart_id", line.CartID,
		"quantity", line.Quantity,
	)
	return s.view(sess), nil
}

// RemoveItem deletes a cart line; removing an absent line is a no-op
func (s *CheckoutService) RemoveItem(sessionID, cartID string) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Cart.Remove(cartID)
	return s.view(sess), nil
}

// UpdateQuantity applies a signed delta to a line's quantity (clamped at 1)
func (s *CheckoutService) UpdateQuantity(sessionID, cartID string, delta int) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Cart.UpdateQuantity(cartID, delta)
	return s.view(sess), nil
}

// Begin starts the wizard (cart -> method); guarded on a non-empty cart
func (s *CheckoutService) Begin(sessionID string) (*CartView, error) {
	return s.transition(sessionID, func(sess *checkout.Session) error {
		return sess.Flow.Begin(sess.Cart)
	})
}

// SetMethod records the fulfillment method (method -> details)
func (s *CheckoutService) SetMethod(sessionID string, t models.OrderType) (*CartView, error) {
	return s.transition(sessionID, func(sess *checkout.Session) error {
		return sess.Flow.SetMethod(t)
	})
}

// SetDetails records customer details (details -> payment)
func (s *CheckoutService) SetDetails(sessionID string, d models.CustomerDetails) (*CartView, error) {
	return s.transition(sessionID, func(sess *checkout.Session) error {
		return sess.Flow.SetDetails(d)
	})
}

// SetPayment records the payment preference; the wizard stays at payment
func (s *CheckoutService) SetPayment(sessionID string, p models.PaymentMethod) (*CartView, error) {
	return s.transition(sessionID, func(sess *checkout.Session) error {
		return sess.Flow.SetPayment(p)
	})
}

// Back moves one step toward the cart, keeping entered details
func (s *CheckoutService) Back(sessionID string) (*CartView, error) {
	return s.transition(sessionID, func(sess *checkout.Session) error {
		return sess.Flow.Back()
	})
}

// Close abandons the checkout from any step and closes the drawer. The cart
// itself is kept unless an order already completed.
func (s *CheckoutService) Close(sessionID string) (*CartView, error) {
	return s.transition(sessionID, func(sess *checkout.Session) error {
		if sess.Flow.Step == checkout.StepSuccess {
			sess.Cart.Clear()
		}
		sess.Flow.Close()
		return nil
	})
}

func (s *CheckoutService) transition(sessionID string, fn func(*checkout.Session) error) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()
	if err := fn(sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// Confirm submits the order (payment -> success). On submission failure the
// wizard stays at payment and the error is returned for a retry; there is
// no silent success path.
func (s *CheckoutService) Confirm(ctx context.Context, sessionID string) (*models.OrderConfirmation, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Flow.Step != checkout.StepPayment {
		return nil, checkout.ErrWrongStep
	}

	totals := s.rates.Totals(sess.Cart, sess.Flow.OrderType)
	o := &models.Order{
		ID:       uuid.New().String(),
		Type:     sess.Flow.OrderType,
		Payment:  sess.Flow.Payment,
		Customer: sess.Flow.Details,
		Lines:    sess.Cart.Lines(),
		Totals:   totals,
		PlacedAt: time.Now().UTC(),
	}
	o.Reference = order.Reference(o.ID)

	submitCtx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()

	if err := s.submitter.Submit(submitCtx, o); err != nil {
		s.log.Error("order submission failed", "session_id", sess.ID, "order_id", o.ID, "error", err)
		return nil, err
	}

	conf := &models.OrderConfirmation{
		OrderID:          o.ID,
		Reference:        o.Reference,
		Type:             o.Type,
		Payment:          o.Payment,
		Totals:           totals,
		AmountDue:        totals.Total.StringFixed(2),
		EstimatedMinutes: order.EstimatedWindow(o.Type),
	}
	if err := sess.Flow.Complete(conf); err != nil {
		return nil, err
	}

	s.log.Info("order placed",
		"session_id", sess.ID,
		"order_id", o.ID,
		"reference", o.Reference,
		"type", o.Type,
		"total", conf.AmountDue,
	)
	return conf, nil
}
