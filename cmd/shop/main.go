package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	adminapp "github.com/dwikikusuma/gamecock-shop/internal/admin/app"
	"github.com/dwikikusuma/gamecock-shop/internal/api"
	cartapp "github.com/dwikikusuma/gamecock-shop/internal/cart/app"
	cartcatalog "github.com/dwikikusuma/gamecock-shop/internal/cart/infra/catalog"
	cartredis "github.com/dwikikusuma/gamecock-shop/internal/cart/infra/redis"
	catalogapp "github.com/dwikikusuma/gamecock-shop/internal/catalog/app"
	catalogpg "github.com/dwikikusuma/gamecock-shop/internal/catalog/infra/postgres"
	checkoutapp "github.com/dwikikusuma/gamecock-shop/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/gamecock-shop/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/gamecock-shop/internal/database"
	identityapp "github.com/dwikikusuma/gamecock-shop/internal/identity/app"
	identitypg "github.com/dwikikusuma/gamecock-shop/internal/identity/infra/postgres"
	orderapp "github.com/dwikikusuma/gamecock-shop/internal/order/app"
	orderpg "github.com/dwikikusuma/gamecock-shop/internal/order/infra/postgres"
	"github.com/dwikikusuma/gamecock-shop/pkg/config"
	"github.com/dwikikusuma/gamecock-shop/pkg/kafka"
	"github.com/dwikikusuma/gamecock-shop/pkg/logger"
	"github.com/dwikikusuma/gamecock-shop/pkg/metrics"
	"github.com/dwikikusuma/gamecock-shop/pkg/postgres"
	"github.com/dwikikusuma/gamecock-shop/pkg/redis"
	"github.com/dwikikusuma/gamecock-shop/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "shop", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})
	slog.SetDefault(log)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	pool, err := postgres.Open(ctx, postgres.Config{
		Host:    cfg.PostgresHost,
		Port:    cfg.PostgresPort,
		User:    cfg.PostgresUser,
		Pass:    cfg.PostgresPass,
		DB:      cfg.PostgresDB,
		SSLMode: cfg.PostgresSSL,
	})
	if err != nil {
		log.Error("postgres open failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Error("migrations failed", slog.Any("err", err))
		os.Exit(1)
	}

	rdb, err := redis.Open(ctx, redis.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Error("redis open failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer rdb.Close()

	// Catalog
	catalogSvc := catalogapp.NewService(
		catalogpg.NewProductRepo(pool),
		catalogpg.NewCategoryRepo(pool),
	)

	// Cart
	cartStore := cartredis.NewStore(rdb, log)
	cartSvc := cartapp.NewService(cartStore, cartcatalog.NewReader(catalogSvc), log)

	// Orders
	orderSvc := orderapp.NewService(orderpg.NewOrderRepo(pool))

	// Checkout (adapters around carts and orders)
	var events checkoutapp.EventPublisher = checkoutadapter.NopPublisher{}
	kafkaClient := kafka.NewClient(cfg.KafkaBrokers)
	if kafkaClient.Enabled() {
		publisher := checkoutadapter.NewKafkaPublisher(kafkaClient, cfg.OrderEventTopic)
		defer publisher.Close()
		events = publisher
		log.Info("order events enabled", slog.String("topic", cfg.OrderEventTopic))
	}
	checkoutSvc := checkoutapp.NewService(
		cartStore,
		checkoutadapter.NewOrderServiceWriter(orderSvc),
		events,
		log,
	)

	// Identity and back-office
	userRepo := identitypg.NewUserRepo(pool)
	identitySvc := identityapp.NewService(userRepo)
	adminSvc := adminapp.NewService(userRepo, catalogSvc, orderSvc)

	router := api.NewRouter(api.RouterConfig{
		Catalog:       api.NewCatalogHandler(catalogSvc),
		Cart:          api.NewCartHandler(cartSvc),
		Checkout:      api.NewCheckoutHandler(checkoutSvc, metrics.NewCheckoutMetrics()),
		Admin:         api.NewAdminHandler(adminSvc),
		Identity:      api.NewIdentityHandler(identitySvc),
		ServerMetrics: metrics.NewServerMetrics("api"),
		Ready: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return fmt.Errorf("postgres: %w", err)
			}
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis: %w", err)
			}
			return nil
		},
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("http starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http serve error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := srv.Shutdown(stopCtx); err != nil {
		log.Warn("graceful stop timeout, forcing close", slog.Any("err", err))
		_ = srv.Close()
	}

	log.Info("bye")
}
