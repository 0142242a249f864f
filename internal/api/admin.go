package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	adminapp "github.com/dwikikusuma/gamecock-shop/internal/admin/app"
	catalogapp "github.com/dwikikusuma/gamecock-shop/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
	orderapp "github.com/dwikikusuma/gamecock-shop/internal/order/app"
	orderdomain "github.com/dwikikusuma/gamecock-shop/internal/order/domain"
	"github.com/dwikikusuma/gamecock-shop/internal/web"
)

// AdminHandler serves the back-office. Every route requires the admin
// capability; callers without it are bounced to the storefront home
// rather than told the area exists.
type AdminHandler struct {
	svc *adminapp.Service
}

func NewAdminHandler(svc *adminapp.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// deny handles a service error, returning true when the response has
// been written. ErrNotAuthorized becomes a redirect to the home view.
func (h *AdminHandler) deny(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, adminapp.ErrNotAuthorized):
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, catalogapp.ErrInvalidInput):
		web.WriteError(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, catalogdomain.ErrCategoryNotFound),
		errors.Is(err, orderapp.ErrOrderNotFound):
		web.WriteError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		web.WriteError(w, http.StatusInternalServerError, "internal_error", "request failed", nil)
	}
	return true
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context(), web.CustomerID(r))
	if h.deny(w, r, err) {
		return
	}
	web.WriteJSON(w, http.StatusOK, d)
}

type adminProductResponse struct {
	productResponse
	Archived bool `json:"archived"`
}

func toAdminProductResponse(p catalogdomain.Product) adminProductResponse {
	return adminProductResponse{productResponse: toProductResponse(p), Archived: p.Archived}
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context(), web.CustomerID(r))
	if h.deny(w, r, err) {
		return
	}

	out := make([]adminProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toAdminProductResponse(p))
	}
	web.WriteJSON(w, http.StatusOK, out)
}

type productRequest struct {
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int32           `json:"stock"`
	ImageURL    string          `json:"image_url"`
}

func (req productRequest) input() catalogapp.ProductInput {
	return catalogapp.ProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !web.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), web.CustomerID(r), req.input())
	if h.deny(w, r, err) {
		return
	}
	web.WriteJSON(w, http.StatusCreated, toAdminProductResponse(p))
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !web.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.UpdateProduct(r.Context(), web.CustomerID(r), chi.URLParam(r, "id"), req.input())
	if h.deny(w, r, err) {
		return
	}
	web.WriteJSON(w, http.StatusOK, toAdminProductResponse(p))
}

// ArchiveProduct replaces deletion: the product disappears from the
// storefront but stays referencable from historical orders.
func (h *AdminHandler) ArchiveProduct(w http.ResponseWriter, r *http.Request) {
	err := h.svc.ArchiveProduct(r.Context(), web.CustomerID(r), chi.URLParam(r, "id"))
	if h.deny(w, r, err) {
		return
	}
	web.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context(), web.CustomerID(r))
	if h.deny(w, r, err) {
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{ID: c.ID, Name: c.Name})
	}
	web.WriteJSON(w, http.StatusOK, out)
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !web.DecodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), web.CustomerID(r), req.Name)
	if h.deny(w, r, err) {
		return
	}
	web.WriteJSON(w, http.StatusCreated, categoryResponse{ID: c.ID, Name: c.Name})
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !web.DecodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), web.CustomerID(r), chi.URLParam(r, "id"), req.Name)
	if h.deny(w, r, err) {
		return
	}
	web.WriteJSON(w, http.StatusOK, categoryResponse{ID: c.ID, Name: c.Name})
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteCategory(r.Context(), web.CustomerID(r), chi.URLParam(r, "id"))
	if h.deny(w, r, err) {
		return
	}
	web.WriteJSON(w, http.StatusNoContent, nil)
}

type orderSummaryResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context(), web.CustomerID(r))
	if h.deny(w, r, err) {
		return
	}

	out := make([]orderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderSummaryResponse{
			ID:           o.ID,
			CustomerID:   o.CustomerID,
			CustomerName: o.CustomerName,
			TotalPrice:   o.TotalPrice,
			CreatedAt:    o.CreatedAt,
		})
	}
	web.WriteJSON(w, http.StatusOK, out)
}

type orderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type orderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	Items      []orderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
}

func toOrderResponse(o orderdomain.Order) orderResponse {
	out := orderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		Items:      make([]orderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, orderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}
	return out
}

func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.GetOrder(r.Context(), web.CustomerID(r), chi.URLParam(r, "id"))
	if h.deny(w, r, err) {
		return
	}
	web.WriteJSON(w, http.StatusOK, toOrderResponse(o))
}

func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteOrder(r.Context(), web.CustomerID(r), chi.URLParam(r, "id"))
	if h.deny(w, r, err) {
		return
	}
	web.WriteJSON(w, http.StatusNoContent, nil)
}
