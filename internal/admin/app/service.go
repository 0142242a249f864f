package app

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	catalogapp "github.com/dwikikusuma/gamecock-shop/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
	orderapp "github.com/dwikikusuma/gamecock-shop/internal/order/app"
	orderdomain "github.com/dwikikusuma/gamecock-shop/internal/order/domain"
)

// ErrNotAuthorized is returned for every back-office call made without
// the admin capability; the HTTP layer turns it into a redirect to the
// public home view instead of a distinguishable authorization error.
var ErrNotAuthorized = errors.New("admin capability required")

type Service struct {
	users   UserDirectory
	catalog *catalogapp.Service
	orders  *orderapp.Service
}

func NewService(users UserDirectory, catalog *catalogapp.Service, orders *orderapp.Service) *Service {
	return &Service{
		users:   users,
		catalog: catalog,
		orders:  orders,
	}
}

func (s *Service) authorize(ctx context.Context, adminID string) error {
	if strings.TrimSpace(adminID) == "" {
		return ErrNotAuthorized
	}
	u, err := s.users.Get(ctx, adminID)
	if err != nil || !u.IsAdmin {
		return ErrNotAuthorized
	}
	return nil
}

type Dashboard struct {
	TotalProducts   int64 `json:"total_products"`
	TotalCategories int64 `json:"total_categories"`
	TotalOrders     int64 `json:"total_orders"`
}

func (s *Service) Dashboard(ctx context.Context, adminID string) (Dashboard, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return Dashboard{}, err
	}

	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.catalog.CountProducts(ctx)
		d.TotalProducts = n
		return err
	})
	g.Go(func() error {
		n, err := s.catalog.CountCategories(ctx)
		d.TotalCategories = n
		return err
	})
	g.Go(func() error {
		n, err := s.orders.CountOrders(ctx)
		d.TotalOrders = n
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}

func (s *Service) ListProducts(ctx context.Context, adminID string) ([]catalogdomain.Product, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return nil, err
	}
	return s.catalog.ListProducts(ctx, true)
}

func (s *Service) CreateProduct(ctx context.Context, adminID string, in catalogapp.ProductInput) (catalogdomain.Product, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return catalogdomain.Product{}, err
	}
	return s.catalog.CreateProduct(ctx, in)
}

func (s *Service) UpdateProduct(ctx context.Context, adminID, productID string, in catalogapp.ProductInput) (catalogdomain.Product, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return catalogdomain.Product{}, err
	}
	return s.catalog.UpdateProduct(ctx, productID, in)
}

func (s *Service) ArchiveProduct(ctx context.Context, adminID, productID string) error {
	if err := s.authorize(ctx, adminID); err != nil {
		return err
	}
	return s.catalog.ArchiveProduct(ctx, productID)
}

func (s *Service) ListCategories(ctx context.Context, adminID string) ([]catalogdomain.Category, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return nil, err
	}
	return s.catalog.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, adminID, name string) (catalogdomain.Category, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return catalogdomain.Category{}, err
	}
	return s.catalog.CreateCategory(ctx, name)
}

func (s *Service) UpdateCategory(ctx context.Context, adminID, categoryID, name string) (catalogdomain.Category, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return catalogdomain.Category{}, err
	}
	return s.catalog.UpdateCategory(ctx, categoryID, name)
}

func (s *Service) DeleteCategory(ctx context.Context, adminID, categoryID string) error {
	if err := s.authorize(ctx, adminID); err != nil {
		return err
	}
	return s.catalog.DeleteCategory(ctx, categoryID)
}

func (s *Service) ListOrders(ctx context.Context, adminID string) ([]orderdomain.Summary, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return nil, err
	}
	return s.orders.ListOrders(ctx)
}

func (s *Service) GetOrder(ctx context.Context, adminID, orderID string) (orderdomain.Order, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return orderdomain.Order{}, err
	}
	return s.orders.GetOrder(ctx, orderID)
}

// DeleteOrder removes the record outright. Stock is not re-credited;
// this is record cleanup, not a cancellation flow.
func (s *Service) DeleteOrder(ctx context.Context, adminID, orderID string) error {
	if err := s.authorize(ctx, adminID); err != nil {
		return err
	}
	return s.orders.DeleteOrder(ctx, orderID)
}
