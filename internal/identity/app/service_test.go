package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/gamecock-shop/internal/identity/domain"
)

type fakeUserRepo struct {
	byName map[string]domain.User
}

func (f *fakeUserRepo) Get(ctx context.Context, id string) (domain.User, error) {
	for _, u := range f.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, username string, isCustomer, isAdmin bool) (domain.User, error) {
	u := domain.User{ID: "user-1", Username: username, IsCustomer: isCustomer, IsAdmin: isAdmin}
	f.byName[username] = u
	return u, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{byName: map[string]domain.User{}})

		u, err := svc.Register(ctx, "  shopper  ")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if u.Username != "shopper" || !u.IsCustomer || u.IsAdmin {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("rejects short names", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{byName: map[string]domain.User{}})

		if _, err := svc.Register(ctx, "ab"); !errors.Is(err, ErrInvalidUsername) {
			t.Fatalf("expected ErrInvalidUsername, got %v", err)
		}
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		repo := &fakeUserRepo{byName: map[string]domain.User{
			"shopper": {ID: "user-1", Username: "shopper"},
		}}
		svc := NewService(repo)

		if _, err := svc.Register(ctx, "shopper"); !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})
}
