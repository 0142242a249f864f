package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	cartdomain "github.com/dwikikusuma/gamecock-shop/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
)

type Service struct {
	store   Store
	catalog CatalogReader
	log     *slog.Logger
}

func NewService(store Store, catalog CatalogReader, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:   store,
		catalog: catalog,
		log:     log,
	}
}

// Add snapshots the product's current name, price, and image into the
// cart. There is deliberately no stock check here; stock is only
// authoritative at checkout.
func (s *Service) Add(ctx context.Context, sessionID, productID string) error {
	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if p.Archived {
		return catalogdomain.ErrProductNotFound
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	cart.Add(p.ID, p.Name, p.Price, p.ImageURL)
	return s.store.Put(ctx, sessionID, cart)
}

func (s *Service) Increase(ctx context.Context, sessionID, productID string) error {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	cart.Increase(productID)
	return s.store.Put(ctx, sessionID, cart)
}

func (s *Service) Decrease(ctx context.Context, sessionID, productID string) error {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	cart.Decrease(productID)
	return s.store.Put(ctx, sessionID, cart)
}

func (s *Service) Remove(ctx context.Context, sessionID, productID string) error {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	cart.Remove(productID)
	return s.store.Put(ctx, sessionID, cart)
}

type View struct {
	Lines []cartdomain.Line `json:"lines"`
	Total decimal.Decimal   `json:"total"`
}

// View renders the cart. Malformed entries are logged and skipped, not
// surfaced: the cart is not authoritative data.
func (s *Service) View(ctx context.Context, sessionID string) (View, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return View{}, fmt.Errorf("failed to load cart: %w", err)
	}

	lines, malformed := cart.Lines()
	for _, id := range malformed {
		s.log.Warn("skipping malformed cart entry",
			slog.String("session_id", sessionID),
			slog.String("product_id", id),
		)
	}

	total := decimal.Zero
	for _, ln := range lines {
		total = total.Add(ln.Subtotal)
	}

	return View{Lines: lines, Total: total}, nil
}
