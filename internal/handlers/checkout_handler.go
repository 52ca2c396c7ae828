package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/larosas-pizzeria/ordering-api/internal/checkout"
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/internal/order"
	"github.com/larosas-pizzeria/ordering-api/internal/service"
)

// CheckoutHandler drives the checkout wizard over HTTP
type CheckoutHandler struct {
	service *service.CheckoutService
	log     *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(service *service.CheckoutService, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log,
	}
}

func (h *CheckoutHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		WriteError(w, http.StatusNotFound, "Session not found", h.log)
	case errors.Is(err, checkout.ErrEmptyCart):
		WriteError(w, http.StatusConflict, "Cart is empty", h.log)
	case errors.Is(err, checkout.ErrWrongStep):
		WriteError(w, http.StatusConflict, "Action not available at this step", h.log)
	case errors.Is(err, checkout.ErrMissingDetails):
		WriteError(w, http.StatusBadRequest, "Required customer details are missing", h.log)
	case errors.Is(err, checkout.ErrInvalidChoice):
		WriteError(w, http.StatusBadRequest, "Invalid choice", h.log)
	case errors.Is(err, order.ErrSubmissionFailed):
		// Retryable: the wizard stays at the payment step
		WriteError(w, http.StatusBadGateway, "Order submission failed, please try again", h.log)
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}

func (h *CheckoutHandler) respond(w http.ResponseWriter, view *service.CartView, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

// Begin handles POST /api/checkout/begin
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Begin(sessionID(r))
	h.respond(w, view, err)
}

// SetMethodRequest is the body for POST /api/checkout/method
type SetMethodRequest struct {
	OrderType models.OrderType `json:"orderType"`
}

// SetMethod handles POST /api/checkout/method
func (h *CheckoutHandler) SetMethod(w http.ResponseWriter, r *http.Request) {
	var req SetMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	view, err := h.service.SetMethod(sessionID(r), req.OrderType)
	h.respond(w, view, err)
}

// SetDetails handles POST /api/checkout/details
func (h *CheckoutHandler) SetDetails(w http.ResponseWriter, r *http.Request) {
	var details models.CustomerDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	view, err := h.service.SetDetails(sessionID(r), details)
	h.respond(w, view, err)
}

// SetPaymentRequest is the body for POST /api/checkout/payment
type SetPaymentRequest struct {
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

// SetPayment handles POST /api/checkout/payment
func (h *CheckoutHandler) SetPayment(w http.ResponseWriter, r *http.Request) {
	var req SetPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	view, err := h.service.SetPayment(sessionID(r), req.PaymentMethod)
	h.respond(w, view, err)
}

// Confirm handles POST /api/checkout/confirm
// Submits the order; on success the wizard reaches its terminal step and
// the confirmation receipt is returned.
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	conf, err := h.service.Confirm(r.Context(), sessionID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, conf, h.log)
}

// Back handles POST /api/checkout/back
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Back(sessionID(r))
	h.respond(w, view, err)
}

// Close handles POST /api/checkout/close
// Abandons the checkout from any step; collected details are discarded.
func (h *CheckoutHandler) Close(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Close(sessionID(r))
	h.respond(w, view, err)
}
