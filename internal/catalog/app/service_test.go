package app

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
)

type fakeProductRepo struct {
	archived []string
}

func (f *fakeProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	return p, nil
}
func (f *fakeProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	return domain.Product{ID: id}, nil
}
func (f *fakeProductRepo) List(ctx context.Context, includeArchived bool) ([]domain.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	return p, nil
}
func (f *fakeProductRepo) Archive(ctx context.Context, id string) error {
	f.archived = append(f.archived, id)
	return nil
}
func (f *fakeProductRepo) DecrementStock(ctx context.Context, id string, quantity int32) error {
	return nil
}
func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakeCategoryRepo struct{}

func (fakeCategoryRepo) Create(ctx context.Context, name string) (domain.Category, error) {
	return domain.Category{Name: name}, nil
}
func (fakeCategoryRepo) Get(ctx context.Context, id string) (domain.Category, error) {
	return domain.Category{ID: id}, nil
}
func (fakeCategoryRepo) List(ctx context.Context) ([]domain.Category, error) { return nil, nil }
func (fakeCategoryRepo) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	return c, nil
}
func (fakeCategoryRepo) Delete(ctx context.Context, id string) error   { return nil }
func (fakeCategoryRepo) Count(ctx context.Context) (int64, error)      { return 0, nil }

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(&fakeProductRepo{}, fakeCategoryRepo{})

	t.Run("empty name -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), ProductInput{
			Name:  "   ",
			Price: decimal.NewFromInt(10),
		})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative price -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), ProductInput{
			Name:  "Lemon Hatch",
			Price: decimal.NewFromInt(-1),
		})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative stock -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), ProductInput{
			Name:  "Lemon Hatch",
			Price: decimal.NewFromInt(10),
			Stock: -3,
		})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("valid input trims the name", func(t *testing.T) {
		p, err := svc.CreateProduct(context.Background(), ProductInput{
			Name:  "  Lemon Hatch  ",
			Price: decimal.RequireFromString("150.00"),
			Stock: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Lemon Hatch" {
			t.Fatalf("expected trimmed name, got %q", p.Name)
		}
	})
}

func TestDecrementStockValidation(t *testing.T) {
	svc := NewService(&fakeProductRepo{}, fakeCategoryRepo{})

	t.Run("zero quantity -> invalid", func(t *testing.T) {
		if err := svc.DecrementStock(context.Background(), "p1", 0); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("empty id -> invalid", func(t *testing.T) {
		if err := svc.DecrementStock(context.Background(), " ", 1); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
