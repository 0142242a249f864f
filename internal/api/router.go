package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dwikikusuma/gamecock-shop/internal/web"
	"github.com/dwikikusuma/gamecock-shop/pkg/metrics"
)

type RouterConfig struct {
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Admin    *AdminHandler
	Identity *IdentityHandler

	ServerMetrics *metrics.ServerMetrics

	// Ready reports whether downstream dependencies are reachable.
	Ready func(ctx context.Context) error
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	if cfg.ServerMetrics != nil {
		r.Use(web.Metrics(cfg.ServerMetrics))
	}
	r.Use(web.Session)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Ready != nil {
			if err := cfg.Ready(r.Context()); err != nil {
				web.WriteError(w, http.StatusServiceUnavailable, "not_ready", err.Error(), nil)
				return
			}
		}
		web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/products", func(r chi.Router) {
		r.Get("/", cfg.Catalog.List)
		r.Get("/{id}", cfg.Catalog.Get)
	})
	r.Get("/categories", cfg.Catalog.ListCategories)

	r.Post("/users", cfg.Identity.Register)
	r.Get("/me", cfg.Identity.Me)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cfg.Cart.View)
		r.Post("/items", cfg.Cart.Add)
		r.Post("/items/{id}/increase", cfg.Cart.Increase)
		r.Post("/items/{id}/decrease", cfg.Cart.Decrease)
		r.Delete("/items/{id}", cfg.Cart.Remove)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Post("/", cfg.Checkout.Checkout)
		r.Post("/preview", cfg.Checkout.Preview)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/dashboard", cfg.Admin.Dashboard)

		r.Get("/products", cfg.Admin.ListProducts)
		r.Post("/products", cfg.Admin.CreateProduct)
		r.Put("/products/{id}", cfg.Admin.UpdateProduct)
		r.Delete("/products/{id}", cfg.Admin.ArchiveProduct)

		r.Get("/categories", cfg.Admin.ListCategories)
		r.Post("/categories", cfg.Admin.CreateCategory)
		r.Put("/categories/{id}", cfg.Admin.UpdateCategory)
		r.Delete("/categories/{id}", cfg.Admin.DeleteCategory)

		r.Get("/orders", cfg.Admin.ListOrders)
		r.Get("/orders/{id}", cfg.Admin.GetOrder)
		r.Delete("/orders/{id}", cfg.Admin.DeleteOrder)
	})

	return r
}
