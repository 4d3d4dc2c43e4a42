package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-api/internal/auth"
	"storefront-api/internal/config"
	"storefront-api/internal/db"
	"storefront-api/internal/httpserver"
	"storefront-api/internal/payment"
	attributerepo "storefront-api/internal/repository/attribute"
	cartrepo "storefront-api/internal/repository/cart"
	categoryrepo "storefront-api/internal/repository/category"
	currencyrepo "storefront-api/internal/repository/currency"
	discountrepo "storefront-api/internal/repository/discount"
	productrepo "storefront-api/internal/repository/product"
	userrepo "storefront-api/internal/repository/user"
	attributesvc "storefront-api/internal/service/attribute"
	cartsvc "storefront-api/internal/service/cart"
	categorysvc "storefront-api/internal/service/category"
	currencysvc "storefront-api/internal/service/currency"
	discountsvc "storefront-api/internal/service/discount"
	productsvc "storefront-api/internal/service/product"
	usersvc "storefront-api/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	stripeClient := payment.NewStripe(cfg.StripeKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL, logger)

	userRepo := userrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	attributeRepo := attributerepo.NewPostgres(dbpool)
	currencyRepo := currencyrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	discountRepo := discountrepo.NewPostgres(dbpool, logger)

	userService := usersvc.New(userRepo, tokens, cfg.BcryptCost)
	categoryService := categorysvc.New(categoryRepo)
	attributeService := attributesvc.New(attributeRepo)
	currencyService := currencysvc.New(currencyRepo)
	productService := productsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo, discountRepo, stripeClient)
	discountService := discountsvc.New(discountRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Tokens:     tokens,
		Users:      userService,
		Categories: categoryService,
		Attributes: attributeService,
		Products:   productService,
		Currencies: currencyService,
		Cart:       cartService,
		Discounts:  discountService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
