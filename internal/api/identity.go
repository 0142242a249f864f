package api

import (
	"errors"
	"net/http"

	identityapp "github.com/dwikikusuma/gamecock-shop/internal/identity/app"
	identitydomain "github.com/dwikikusuma/gamecock-shop/internal/identity/domain"
	"github.com/dwikikusuma/gamecock-shop/internal/web"
)

type IdentityHandler struct {
	svc *identityapp.Service
}

func NewIdentityHandler(svc *identityapp.Service) *IdentityHandler {
	return &IdentityHandler{svc: svc}
}

type userResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	IsCustomer bool   `json:"is_customer"`
	IsAdmin    bool   `json:"is_admin"`
}

func toUserResponse(u identitydomain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Username:   u.Username,
		IsCustomer: u.IsCustomer,
		IsAdmin:    u.IsAdmin,
	}
}

type registerRequest struct {
	Username string `json:"username"`
}

func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !web.DecodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Register(r.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, identityapp.ErrInvalidUsername):
			web.WriteError(w, http.StatusBadRequest, "invalid_username", err.Error(), nil)
		case errors.Is(err, identityapp.ErrUsernameTaken):
			web.WriteError(w, http.StatusConflict, "username_taken", err.Error(), nil)
		default:
			web.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to register", nil)
		}
		return
	}

	web.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// Me returns the profile of the authenticated caller.
func (h *IdentityHandler) Me(w http.ResponseWriter, r *http.Request) {
	customerID := web.CustomerID(r)
	if customerID == "" {
		web.WriteError(w, http.StatusUnauthorized, "unauthenticated", "sign in required", nil)
		return
	}

	u, err := h.svc.Current(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, identitydomain.ErrUserNotFound) {
			web.WriteError(w, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		web.WriteError(w, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}

	web.WriteJSON(w, http.StatusOK, toUserResponse(u))
}
