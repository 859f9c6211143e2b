package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/admin"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/backend"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/cart"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/catalog"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/checkout"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/config"
	h "github.com/chimcuccuccu/T2BIKE-sub000/internal/http"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/profile"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/wishlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()

	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)

	// Redis is optional: without it carts are process-local and product
	// detail pages skip the cache.
	var carts cart.Store = cart.NewMemoryStore()
	var productCache *catalog.ProductCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Fatalf("redis ping failed: %v", err)
		}
		carts = cart.NewRedisStore(rdb)
		productCache = catalog.NewProductCache(rdb)
		log.Printf("using redis at %s", cfg.RedisAddr)
	} else {
		log.Println("REDIS_ADDR not set, using in-memory cart store")
	}

	catalogSvc := catalog.NewService(client, productCache)
	profileSvc := profile.NewService(client)
	wishlists := wishlist.NewStore()
	wizards := checkout.NewManager()

	handlers := h.Handlers{
		Cart:     h.NewCartHandler(carts, catalogSvc, cfg.RequestTimeout),
		Checkout: h.NewCheckoutHandler(wizards, carts, client, cfg.RequestTimeout),
		Catalog:  h.NewCatalogHandler(catalogSvc, cfg.RequestTimeout),
		Reviews:  h.NewReviewHandler(client, cfg.RequestTimeout),
		Auth:     h.NewAuthHandler(client, cfg.RequestTimeout),
		Profile:  h.NewProfileHandler(profileSvc, cfg.RequestTimeout),
		Wishlist: h.NewWishlistHandler(wishlists, catalogSvc, cfg.RequestTimeout),
		Admin: h.NewAdminHandler(
			admin.NewProducts(client),
			admin.NewOrders(client),
			admin.NewUsers(client),
			admin.NewReviews(client),
			client,
			cfg.RequestTimeout,
		),
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionMiddleware)

	h.Mount(r, handlers)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
