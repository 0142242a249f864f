package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/gamecock-shop/internal/identity/domain"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrUsernameTaken   = errors.New("username already taken")
)

type UserRepo interface {
	Get(ctx context.Context, id string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Create(ctx context.Context, username string, isCustomer, isAdmin bool) (domain.User, error)
}

type Service struct {
	repo UserRepo
}

func NewService(repo UserRepo) *Service {
	return &Service{repo: repo}
}

// Register creates a customer account. Admin accounts are provisioned
// out of band, never through this endpoint.
func (s *Service) Register(ctx context.Context, username string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 64 {
		return domain.User{}, ErrInvalidUsername
	}

	_, err := s.repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.User{}, ErrUsernameTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return domain.User{}, err
	}

	return s.repo.Create(ctx, username, true, false)
}

func (s *Service) Current(ctx context.Context, id string) (domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return domain.User{}, domain.ErrUserNotFound
	}
	return s.repo.Get(ctx, id)
}
