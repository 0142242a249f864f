package app

import (
	"context"

	identitydomain "github.com/dwikikusuma/gamecock-shop/internal/identity/domain"
)

// UserDirectory resolves the caller's capability flags. Authentication
// itself happens upstream; only the is-admin check lives here.
type UserDirectory interface {
	Get(ctx context.Context, id string) (identitydomain.User, error)
}
