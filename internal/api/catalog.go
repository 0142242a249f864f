// Package api exposes the storefront and back-office over HTTP. It
// translates between the JSON surface and the application services;
// no business rules live here.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	catalogapp "github.com/dwikikusuma/gamecock-shop/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
	"github.com/dwikikusuma/gamecock-shop/internal/web"
)

type CatalogHandler struct {
	svc *catalogapp.Service
}

func NewCatalogHandler(svc *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type productResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int32           `json:"stock"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toProductResponse(p catalogdomain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List serves the public storefront listing. Archived products are
// never included here.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		products []catalogdomain.Product
		err      error
	)
	if categoryID := r.URL.Query().Get("category"); categoryID != "" {
		products, err = h.svc.ListProductsByCategory(r.Context(), categoryID)
	} else {
		products, err = h.svc.ListProducts(r.Context(), false)
	}
	if err != nil {
		web.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to list products", nil)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	web.WriteJSON(w, http.StatusOK, out)
}

// Get serves the public detail view. Archived products 404 like they
// never existed.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil || p.Archived {
		switch {
		case p.Archived, errors.Is(err, catalogdomain.ErrProductNotFound):
			web.WriteError(w, http.StatusNotFound, "not_found", "product not found", nil)
		case errors.Is(err, catalogapp.ErrInvalidInput):
			web.WriteError(w, http.StatusBadRequest, "invalid_input", "invalid product id", nil)
		default:
			web.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to get product", nil)
		}
		return
	}

	web.WriteJSON(w, http.StatusOK, toProductResponse(p))
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		web.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to list categories", nil)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{ID: c.ID, Name: c.Name})
	}
	web.WriteJSON(w, http.StatusOK, out)
}
