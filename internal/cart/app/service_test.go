package app_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/gamecock-shop/internal/cart/app"
	"github.com/dwikikusuma/gamecock-shop/internal/cart/infra/memory"
	catalogdomain "github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
)

type fakeCatalog struct {
	products map[string]app.Product
}

func (f *fakeCatalog) GetProduct(ctx context.Context, productID string) (app.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return app.Product{}, catalogdomain.ErrProductNotFound
	}
	return p, nil
}

func newTestService(products map[string]app.Product) *app.Service {
	return app.NewService(memory.NewStore(), &fakeCatalog{products: products}, nil)
}

func TestAddSnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{products: map[string]app.Product{
		"p1": {ID: "p1", Name: "Kelso", Price: decimal.RequireFromString("150.00")},
	}}
	svc := app.NewService(memory.NewStore(), catalog, nil)

	if err := svc.Add(ctx, "sess", "p1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// A later catalog price change must not touch the queued total.
	catalog.products["p1"] = app.Product{ID: "p1", Name: "Kelso", Price: decimal.RequireFromString("999.00")}

	view, err := svc.View(ctx, "sess")
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if !view.Total.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("expected snapshot total 150.00, got %s", view.Total)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	svc := newTestService(nil)

	err := svc.Add(context.Background(), "sess", "ghost")
	if err != catalogdomain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddArchivedProduct(t *testing.T) {
	svc := newTestService(map[string]app.Product{
		"p1": {ID: "p1", Name: "Kelso", Price: decimal.NewFromInt(10), Archived: true},
	})

	err := svc.Add(context.Background(), "sess", "p1")
	if err != catalogdomain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound for archived product, got %v", err)
	}
}

func TestIncreaseDecreaseRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(map[string]app.Product{
		"p1": {ID: "p1", Name: "Kelso", Price: decimal.RequireFromString("10.00")},
	})

	if err := svc.Add(ctx, "sess", "p1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.Increase(ctx, "sess", "p1"); err != nil {
		t.Fatalf("Increase failed: %v", err)
	}

	view, _ := svc.View(ctx, "sess")
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %+v", view.Lines)
	}

	if err := svc.Decrease(ctx, "sess", "p1"); err != nil {
		t.Fatalf("Decrease failed: %v", err)
	}
	if err := svc.Decrease(ctx, "sess", "p1"); err != nil {
		t.Fatalf("Decrease failed: %v", err)
	}

	view, _ = svc.View(ctx, "sess")
	if len(view.Lines) != 0 {
		t.Fatalf("expected empty cart after decreasing to zero, got %+v", view.Lines)
	}

	// Decreasing an absent entry stays a no-op.
	if err := svc.Decrease(ctx, "sess", "p1"); err != nil {
		t.Fatalf("Decrease on empty cart failed: %v", err)
	}
}

func TestViewIsolatedPerSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(map[string]app.Product{
		"p1": {ID: "p1", Name: "Kelso", Price: decimal.RequireFromString("10.00")},
	})

	if err := svc.Add(ctx, "sess-a", "p1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	view, err := svc.View(ctx, "sess-b")
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected empty cart for other session, got %+v", view.Lines)
	}
}
