package app

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	products   ProductRepo
	categories CategoryRepo
}

func NewService(products ProductRepo, categories CategoryRepo) *Service {
	return &Service{
		products:   products,
		categories: categories,
	}
}

type ProductInput struct {
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int32
	ImageURL    string
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)

	if in.Name == "" || in.Price.IsNegative() || in.Stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	if in.CategoryID != "" {
		if _, err := s.categories.Get(ctx, in.CategoryID); err != nil {
			return domain.Product{}, err
		}
	}

	p := domain.Product{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
	}

	return s.products.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.products.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, includeArchived bool) ([]domain.Product, error) {
	return s.products.List(ctx, includeArchived)
}

func (s *Service) ListProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	if strings.TrimSpace(categoryID) == "" {
		return nil, ErrInvalidInput
	}
	return s.products.ListByCategory(ctx, categoryID)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)

	if strings.TrimSpace(id) == "" || in.Name == "" || in.Price.IsNegative() || in.Stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	p, err := s.products.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	p.CategoryID = in.CategoryID
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	if in.ImageURL != "" {
		p.ImageURL = in.ImageURL
	}

	return s.products.Update(ctx, p)
}

// ArchiveProduct hides a product from the storefront and from checkout
// without breaking historical order items that reference it.
func (s *Service) ArchiveProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.products.Archive(ctx, id)
}

func (s *Service) DecrementStock(ctx context.Context, id string, quantity int32) error {
	if strings.TrimSpace(id) == "" || quantity <= 0 {
		return ErrInvalidInput
	}
	return s.products.DecrementStock(ctx, id, quantity)
}

func (s *Service) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, ErrInvalidInput
	}
	return s.categories.Create(ctx, name)
}

func (s *Service) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Category{}, ErrInvalidInput
	}
	return s.categories.Get(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) UpdateCategory(ctx context.Context, id, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(id) == "" || name == "" {
		return domain.Category{}, ErrInvalidInput
	}
	return s.categories.Update(ctx, domain.Category{ID: id, Name: name})
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.categories.Delete(ctx, id)
}

func (s *Service) CountProducts(ctx context.Context) (int64, error) {
	return s.products.Count(ctx)
}

func (s *Service) CountCategories(ctx context.Context) (int64, error) {
	return s.categories.Count(ctx)
}
