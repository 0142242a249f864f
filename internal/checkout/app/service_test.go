package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	cartdomain "github.com/dwikikusuma/gamecock-shop/internal/cart/domain"
	"github.com/dwikikusuma/gamecock-shop/internal/cart/infra/memory"
	catalogdomain "github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
	"github.com/dwikikusuma/gamecock-shop/internal/checkout/app"
	"github.com/dwikikusuma/gamecock-shop/internal/checkout/domain"
	"github.com/dwikikusuma/gamecock-shop/pkg/contracts"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fakeOrderWriter mimics the transactional repo: decrements are staged
// on a copy of the stock table and only committed when every line
// clears, so a failed call leaves no trace.
type fakeOrderWriter struct {
	stock  map[string]int32
	orders []domain.PlacedOrder
	fail   error
}

func (f *fakeOrderWriter) Create(ctx context.Context, customerID string, total decimal.Decimal, lines []domain.Line) (domain.PlacedOrder, error) {
	if f.fail != nil {
		return domain.PlacedOrder{}, f.fail
	}

	staged := make(map[string]int32, len(f.stock))
	for id, n := range f.stock {
		staged[id] = n
	}

	for _, ln := range lines {
		available, ok := staged[ln.ProductID]
		if !ok {
			return domain.PlacedOrder{}, catalogdomain.ErrProductNotFound
		}
		if available < int32(ln.Quantity) {
			return domain.PlacedOrder{}, &catalogdomain.InsufficientStockError{
				ProductID: ln.ProductID,
				Name:      ln.Name,
				Available: available,
				Requested: int32(ln.Quantity),
			}
		}
		staged[ln.ProductID] = available - int32(ln.Quantity)
	}

	f.stock = staged
	placed := domain.PlacedOrder{
		ID:         fmt.Sprintf("order-%d", len(f.orders)+1),
		CustomerID: customerID,
		Total:      total,
		Lines:      lines,
		CreatedAt:  time.Now().UTC(),
	}
	f.orders = append(f.orders, placed)
	return placed, nil
}

type capturePublisher struct {
	events []contracts.OrderPlaced
}

func (p *capturePublisher) OrderPlaced(ctx context.Context, event contracts.OrderPlaced) error {
	p.events = append(p.events, event)
	return nil
}

type fixture struct {
	svc    *app.Service
	carts  *memory.Store
	orders *fakeOrderWriter
	events *capturePublisher
}

// newFixture seeds a two-item cart: P1 at 10.00 x2 and P2 at 5.00 x1.
func newFixture(t *testing.T, stock map[string]int32) fixture {
	t.Helper()

	carts := memory.NewStore()
	err := carts.Put(context.Background(), "sess", cartdomain.Cart{
		"p1": {Name: "Sweater", UnitPrice: price("10.00"), Quantity: 2},
		"p2": {Name: "Feed Mix", UnitPrice: price("5.00"), Quantity: 1},
	})
	if err != nil {
		t.Fatalf("seeding cart failed: %v", err)
	}

	orders := &fakeOrderWriter{stock: stock}
	events := &capturePublisher{}
	return fixture{
		svc:    app.NewService(carts, orders, events, nil),
		carts:  carts,
		orders: orders,
		events: events,
	}
}

func (f fixture) cart(t *testing.T) cartdomain.Cart {
	t.Helper()
	c, err := f.carts.Get(context.Background(), "sess")
	if err != nil {
		t.Fatalf("reading cart failed: %v", err)
	}
	return c
}

func TestCheckoutUnauthenticated(t *testing.T) {
	f := newFixture(t, map[string]int32{"p1": 5, "p2": 5})

	_, err := f.svc.Checkout(context.Background(), "sess", "  ", nil)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if len(f.orders.orders) != 0 {
		t.Fatal("no order must be created")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	carts := memory.NewStore()
	svc := app.NewService(carts, &fakeOrderWriter{}, nil, nil)

	_, err := svc.Checkout(context.Background(), "empty-sess", "cust", nil)
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutEmptySelection(t *testing.T) {
	f := newFixture(t, map[string]int32{"p1": 5, "p2": 5})

	_, err := f.svc.Checkout(context.Background(), "sess", "cust", []string{})
	if !errors.Is(err, domain.ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
	if len(f.cart(t)) != 2 {
		t.Fatal("cart must be unchanged")
	}
}

func TestCheckoutSelectionNotInCart(t *testing.T) {
	f := newFixture(t, map[string]int32{"p1": 5, "p2": 5})

	_, err := f.svc.Checkout(context.Background(), "sess", "cust", []string{"ghost"})
	if !errors.Is(err, domain.ErrSelectionNotInCart) {
		t.Fatalf("expected ErrSelectionNotInCart, got %v", err)
	}
	if len(f.cart(t)) != 2 {
		t.Fatal("cart must be unchanged")
	}
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	// stock(P1)=5, stock(P2)=0; selecting both must fail on P2 and
	// leave everything untouched, including P1's stock.
	f := newFixture(t, map[string]int32{"p1": 5, "p2": 0})

	_, err := f.svc.Checkout(context.Background(), "sess", "cust", []string{"p1", "p2"})

	var stockErr *catalogdomain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.ProductID != "p2" || stockErr.Available != 0 || stockErr.Requested != 1 {
		t.Fatalf("unexpected stock error detail: %+v", stockErr)
	}
	if f.orders.stock["p1"] != 5 {
		t.Fatalf("stock(p1) must stay 5, got %d", f.orders.stock["p1"])
	}
	if len(f.orders.orders) != 0 {
		t.Fatal("no order must persist after a failed checkout")
	}
	if len(f.cart(t)) != 2 {
		t.Fatal("cart must be unchanged after a failed checkout")
	}
}

func TestCheckoutSelectedSubset(t *testing.T) {
	// Selecting only P1 succeeds, decrements its stock, and leaves the
	// unselected P2 entry in the cart.
	f := newFixture(t, map[string]int32{"p1": 5, "p2": 0})

	placed, err := f.svc.Checkout(context.Background(), "sess", "cust", []string{"p1"})
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	if !placed.Total.Equal(price("20.00")) {
		t.Fatalf("expected total 20.00, got %s", placed.Total)
	}
	if f.orders.stock["p1"] != 3 {
		t.Fatalf("expected stock(p1)=3, got %d", f.orders.stock["p1"])
	}

	cart := f.cart(t)
	if _, ok := cart["p1"]; ok {
		t.Fatal("p1 must be pruned from the cart")
	}
	if it, ok := cart["p2"]; !ok || it.Quantity != 1 {
		t.Fatalf("p2 must remain untouched, got %+v", cart)
	}
}

func TestCheckoutWholeCartByDefault(t *testing.T) {
	f := newFixture(t, map[string]int32{"p1": 5, "p2": 5})

	placed, err := f.svc.Checkout(context.Background(), "sess", "cust", nil)
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	if !placed.Total.Equal(price("25.00")) {
		t.Fatalf("expected total 25.00, got %s", placed.Total)
	}
	if f.orders.stock["p1"] != 3 || f.orders.stock["p2"] != 4 {
		t.Fatalf("unexpected stock after checkout: %v", f.orders.stock)
	}
	if len(f.cart(t)) != 0 {
		t.Fatalf("cart must be empty after whole-cart checkout, got %v", f.cart(t))
	}

	// Items sum to the order total.
	sum := decimal.Zero
	for _, ln := range placed.Lines {
		sum = sum.Add(ln.Subtotal)
	}
	if !sum.Equal(placed.Total) {
		t.Fatalf("line subtotals %s do not sum to total %s", sum, placed.Total)
	}
}

func TestCheckoutPersistenceFailureLeavesCart(t *testing.T) {
	f := newFixture(t, map[string]int32{"p1": 5, "p2": 5})
	f.orders.fail = errors.New("connection reset")

	_, err := f.svc.Checkout(context.Background(), "sess", "cust", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(f.cart(t)) != 2 {
		t.Fatal("cart must be unchanged when the transaction fails")
	}
}

func TestCheckoutPublishesEvent(t *testing.T) {
	f := newFixture(t, map[string]int32{"p1": 5, "p2": 5})

	placed, err := f.svc.Checkout(context.Background(), "sess", "cust", []string{"p1"})
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}

	if len(f.events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(f.events.events))
	}
	event := f.events.events[0]
	if event.OrderID != placed.ID || event.TotalPrice != "20.00" {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestPreviewHasNoSideEffects(t *testing.T) {
	f := newFixture(t, map[string]int32{"p1": 5, "p2": 5})

	preview, err := f.svc.Preview(context.Background(), "sess", nil)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if !preview.Total.Equal(price("25.00")) {
		t.Fatalf("expected preview total 25.00, got %s", preview.Total)
	}
	if len(f.orders.orders) != 0 || len(f.cart(t)) != 2 {
		t.Fatal("preview must not create orders or touch the cart")
	}
}
