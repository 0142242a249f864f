package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	cartdomain "github.com/dwikikusuma/gamecock-shop/internal/cart/domain"
	"github.com/dwikikusuma/gamecock-shop/internal/checkout/domain"
	"github.com/dwikikusuma/gamecock-shop/pkg/contracts"
)

type Service struct {
	carts  CartStore
	orders OrderWriter
	events EventPublisher
	log    *slog.Logger
}

func NewService(carts CartStore, orders OrderWriter, events EventPublisher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		carts:  carts,
		orders: orders,
		events: events,
		log:    log,
	}
}

// Checkout converts the selected cart entries into a durable order.
//
// A nil selection means "the entire cart"; an explicit empty selection
// is rejected. Totals come from the cart's snapshot prices, never from
// the live catalog. All database effects (order, items, stock
// decrements) commit together or not at all; on any rejection the cart
// and stock are left untouched.
func (s *Service) Checkout(ctx context.Context, sessionID, customerID string, selected []string) (domain.PlacedOrder, error) {
	if strings.TrimSpace(customerID) == "" {
		return domain.PlacedOrder{}, domain.ErrUnauthenticated
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("failed to load cart: %w", err)
	}

	lines, consumed, err := selectLines(cart, selected)
	if err != nil {
		return domain.PlacedOrder{}, err
	}

	total := decimal.Zero
	for _, ln := range lines {
		total = total.Add(ln.Subtotal)
	}

	placed, err := s.orders.Create(ctx, customerID, total, lines)
	if err != nil {
		// Nothing was persisted and the cart was never touched.
		return domain.PlacedOrder{}, err
	}

	for _, id := range consumed {
		cart.Remove(id)
	}
	if err := s.carts.Put(ctx, sessionID, cart); err != nil {
		// The order is committed; losing the prune only leaves stale
		// cart entries behind. Log it rather than failing the checkout.
		s.log.Error("failed to prune cart after checkout",
			slog.String("session_id", sessionID),
			slog.String("order_id", placed.ID),
			slog.Any("err", err),
		)
	}

	s.publishOrderPlaced(ctx, placed)

	return placed, nil
}

// Preview renders the lines and total that a checkout with the same
// selection would charge, without any side effects.
func (s *Service) Preview(ctx context.Context, sessionID string, selected []string) (domain.Preview, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return domain.Preview{}, fmt.Errorf("failed to load cart: %w", err)
	}

	lines, _, err := selectLines(cart, selected)
	if err != nil {
		return domain.Preview{}, err
	}

	total := decimal.Zero
	for _, ln := range lines {
		total = total.Add(ln.Subtotal)
	}
	return domain.Preview{Lines: lines, Total: total}, nil
}

// selectLines resolves a selection against the cart. Selection order is
// preserved; ids missing from the cart are ignored unless none match.
func selectLines(cart cartdomain.Cart, selected []string) ([]domain.Line, []string, error) {
	if len(cart) == 0 {
		return nil, nil, domain.ErrEmptyCart
	}
	if selected != nil && len(selected) == 0 {
		return nil, nil, domain.ErrEmptySelection
	}

	if selected == nil {
		cartLines, _ := cart.Lines()
		selected = make([]string, 0, len(cartLines))
		for _, ln := range cartLines {
			selected = append(selected, ln.ProductID)
		}
	}

	var (
		lines    []domain.Line
		consumed []string
		seen     = make(map[string]bool, len(selected))
	)
	for _, id := range selected {
		if seen[id] {
			continue
		}
		seen[id] = true

		item, ok := cart[id]
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		lines = append(lines, domain.Line{
			ProductID: id,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.UnitPrice.Mul(qty),
		})
		consumed = append(consumed, id)
	}

	if len(lines) == 0 {
		return nil, nil, domain.ErrSelectionNotInCart
	}
	return lines, consumed, nil
}

func (s *Service) publishOrderPlaced(ctx context.Context, placed domain.PlacedOrder) {
	if s.events == nil {
		return
	}

	event := contracts.OrderPlaced{
		OrderID:    placed.ID,
		CustomerID: placed.CustomerID,
		TotalPrice: placed.Total.StringFixed(2),
		PlacedAt:   placed.CreatedAt,
	}
	for _, ln := range placed.Lines {
		event.Lines = append(event.Lines, contracts.OrderPlacedLine{
			ProductID: ln.ProductID,
			Name:      ln.Name,
			UnitPrice: ln.UnitPrice.StringFixed(2),
			Quantity:  ln.Quantity,
			Subtotal:  ln.Subtotal.StringFixed(2),
		})
	}

	// Best effort: the order is already durable, an event gap is
	// recoverable from the orders table.
	if err := s.events.OrderPlaced(ctx, event); err != nil {
		s.log.Warn("failed to publish order placed event",
			slog.String("order_id", placed.ID),
			slog.Any("err", err),
		)
	}
}
