package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/catalog"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/config"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/httpapi"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/payment"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/service"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/store"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Amounts serialize as JSON numbers, matching the public API shape.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	repo, err := catalog.NewRepository(cfg.CatalogDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open catalog database")
	}
	defer repo.Close()

	if err := repo.RunMigrations(); err != nil {
		log.Fatal().Err(err).Msg("failed to run catalog migrations")
	}
	if err := repo.Seed(context.Background(), catalog.DefaultProducts()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}

	products, err := catalog.NewService(repo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create catalog service")
	}

	carts := store.NewMemoryCartStore()
	orders := store.NewMemoryOrderStore()
	provider := payment.NewStripeProvider(cfg.StripeSecretKey, cfg.PaymentTimeout)

	cartService := service.NewCartService(products, carts, cfg.DefaultCurrency, log)
	checkoutService := service.NewCheckoutService(carts, orders, provider, cfg.SettlementCurrency, log)

	router := httpapi.NewRouter(
		httpapi.RouterConfig{
			RequestTimeout:     cfg.RequestTimeout,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		log,
		httpapi.NewProductHandler(products),
		httpapi.NewCartHandler(cartService),
		httpapi.NewCheckoutHandler(checkoutService),
		httpapi.NewOrderHandler(checkoutService),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
