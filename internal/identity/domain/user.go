package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User is the boundary view of an account. Registration and
// authentication live outside this service; only capability flags are
// consumed here.
type User struct {
	ID         string
	Username   string
	IsCustomer bool
	IsAdmin    bool
	CreatedAt  time.Time
}
