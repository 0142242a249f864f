package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dwikikusuma/gamecock-shop/internal/identity/domain"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Get(ctx context.Context, id string) (domain.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return domain.User{}, domain.ErrUserNotFound
	}

	var u domain.User
	var uid uuid.UUID
	err = r.db.QueryRow(ctx,
		`SELECT id, username, is_customer, is_admin, created_at FROM users WHERE id = $1`,
		userID,
	).Scan(&uid, &u.Username, &u.IsCustomer, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	u.ID = uid.String()
	return u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	var uid uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT id, username, is_customer, is_admin, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&uid, &u.Username, &u.IsCustomer, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	u.ID = uid.String()
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, username string, isCustomer, isAdmin bool) (domain.User, error) {
	var u domain.User
	var uid uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (username, is_customer, is_admin)
		 VALUES ($1, $2, $3)
		 RETURNING id, username, is_customer, is_admin, created_at`,
		username, isCustomer, isAdmin,
	).Scan(&uid, &u.Username, &u.IsCustomer, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to create user %q: %w", username, err)
	}
	u.ID = uid.String()
	return u, nil
}
