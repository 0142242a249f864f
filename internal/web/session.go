package web

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SessionCookie names the anonymous storefront session. The cart is
// keyed by it, so it is issued to every visitor, signed in or not.
const SessionCookie = "shop_session"

// CustomerHeader carries the authenticated user id, set by the edge
// proxy after it has verified the caller. The service trusts it as-is.
const CustomerHeader = "X-User-ID"

type contextKey string

const (
	sessionKey  contextKey = "session_id"
	customerKey contextKey = "customer_id"
)

// Session ensures every request carries a session id, minting a new
// uuid cookie for first-time visitors, and lifts the customer id header
// into the context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
			sessionID = c.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(7 * 24 * time.Hour),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey, sessionID)
		if customerID := r.Header.Get(CustomerHeader); customerID != "" {
			ctx = context.WithValue(ctx, customerKey, customerID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session id placed by the Session middleware,
// or "" when the middleware did not run.
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionKey).(string)
	return id
}

// CustomerID returns the authenticated user id, or "" for anonymous
// requests.
func CustomerID(r *http.Request) string {
	id, _ := r.Context().Value(customerKey).(string)
	return id
}
