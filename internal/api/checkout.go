package api

import (
	"errors"
	"net/http"

	catalogdomain "github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/gamecock-shop/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/gamecock-shop/internal/checkout/domain"
	"github.com/dwikikusuma/gamecock-shop/internal/web"
	"github.com/dwikikusuma/gamecock-shop/pkg/metrics"
)

type CheckoutHandler struct {
	svc     *checkoutapp.Service
	metrics *metrics.CheckoutMetrics
}

func NewCheckoutHandler(svc *checkoutapp.Service, m *metrics.CheckoutMetrics) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, metrics: m}
}

// checkoutRequest distinguishes "no selection" (checkout everything)
// from an explicit empty list: an absent or null field decodes to a nil
// slice, [] to an empty one.
type checkoutRequest struct {
	Selected []string `json:"selected"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !web.DecodeJSON(w, r, &req) {
		h.observe("bad_request")
		return
	}

	placed, err := h.svc.Checkout(r.Context(), web.SessionID(r), web.CustomerID(r), req.Selected)
	if err != nil {
		status, code, result := checkoutError(err)
		h.observe(result)

		var stockErr *catalogdomain.InsufficientStockError
		if errors.As(err, &stockErr) {
			web.WriteError(w, status, code, stockErr.Error(), map[string]any{
				"product_id": stockErr.ProductID,
				"available":  stockErr.Available,
				"requested":  stockErr.Requested,
			})
			return
		}
		web.WriteError(w, status, code, err.Error(), nil)
		return
	}

	h.observe("placed")
	web.WriteJSON(w, http.StatusCreated, placed)
}

func (h *CheckoutHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !web.DecodeJSON(w, r, &req) {
		return
	}

	preview, err := h.svc.Preview(r.Context(), web.SessionID(r), req.Selected)
	if err != nil {
		status, code, _ := checkoutError(err)
		web.WriteError(w, status, code, err.Error(), nil)
		return
	}
	web.WriteJSON(w, http.StatusOK, preview)
}

func (h *CheckoutHandler) observe(result string) {
	if h.metrics != nil {
		h.metrics.Observe(result)
	}
}

// checkoutError maps a checkout rejection to an HTTP status, a wire
// error code, and the metric label for the attempt.
func checkoutError(err error) (status int, code, result string) {
	var stockErr *catalogdomain.InsufficientStockError
	switch {
	case errors.Is(err, checkoutdomain.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case errors.Is(err, checkoutdomain.ErrEmptyCart):
		return http.StatusBadRequest, "empty_cart", "empty_cart"
	case errors.Is(err, checkoutdomain.ErrEmptySelection):
		return http.StatusBadRequest, "empty_selection", "empty_selection"
	case errors.Is(err, checkoutdomain.ErrSelectionNotInCart):
		return http.StatusBadRequest, "selection_not_in_cart", "selection_not_in_cart"
	case errors.As(err, &stockErr):
		return http.StatusConflict, "insufficient_stock", "insufficient_stock"
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		return http.StatusConflict, "product_gone", "product_gone"
	default:
		return http.StatusInternalServerError, "internal_error", "error"
	}
}
