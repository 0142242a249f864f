package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	cartapp "github.com/dwikikusuma/gamecock-shop/internal/cart/app"
	catalogdomain "github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
	"github.com/dwikikusuma/gamecock-shop/internal/web"
)

type CartHandler struct {
	svc *cartapp.Service
}

func NewCartHandler(svc *cartapp.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.View(r.Context(), web.SessionID(r))
	if err != nil {
		web.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to load cart", nil)
		return
	}
	web.WriteJSON(w, http.StatusOK, view)
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if !web.DecodeJSON(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		web.WriteError(w, http.StatusBadRequest, "invalid_input", "product_id is required", nil)
		return
	}

	if err := h.svc.Add(r.Context(), web.SessionID(r), req.ProductID); err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			web.WriteError(w, http.StatusNotFound, "not_found", "product not found", nil)
			return
		}
		web.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to add to cart", nil)
		return
	}

	h.View(w, r)
}

// Increase and Decrease are deliberately forgiving: adjusting an entry
// that is not in the cart is a no-op, matching the domain semantics.
func (h *CartHandler) Increase(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.svc.Increase)
}

func (h *CartHandler) Decrease(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.svc.Decrease)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.svc.Remove)
}

func (h *CartHandler) adjust(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, sessionID, productID string) error) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		web.WriteError(w, http.StatusBadRequest, "invalid_input", "product id is required", nil)
		return
	}

	if err := op(r.Context(), web.SessionID(r), productID); err != nil {
		web.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to update cart", nil)
		return
	}

	h.View(w, r)
}
