package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eastern-store/internal/config"
	"eastern-store/internal/domain"
	"eastern-store/internal/handler"
	"eastern-store/internal/middleware"
	"eastern-store/internal/observability"
	"eastern-store/internal/repository/memory"
	"eastern-store/internal/repository/postgres"
	redisrepo "eastern-store/internal/repository/redis"
	"eastern-store/internal/service"
	"eastern-store/internal/session"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "json"
	}
	observability.InitLogger(logLevel, logFormat)

	slog.Info("starting store server", slog.String("mode", cfg.Mode))

	var (
		db          *sql.DB
		vault       domain.SessionVault
		catalogRepo domain.CatalogRepository
		orderRepo   domain.OrderRepository
		contactRepo domain.ContactRepository
	)

	if cfg.Mode == config.ModeFull {
		var err error
		db, err = config.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("connected to postgresql")

		redisClient, err := config.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			slog.Error("failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		slog.Info("connected to redis")

		vault = redisrepo.NewVault(redisClient, cfg.SessionSlotKey)
		catalogRepo = postgres.NewCatalogRepository(db)
		orderRepo = postgres.NewOrderRepository(db)
		contactRepo = postgres.NewContactRepository(db)
	} else {
		vault = memory.NewVault()
		catalogRepo = memory.NewCatalogRepository()
		orderRepo = memory.NewOrderRepository()
		contactRepo = memory.NewContactRepository()
		slog.Info("running with the built-in demo catalog")
	}

	sessionStore := session.NewStore(vault)
	sessionStore.Restore(context.Background())

	catalogService := service.NewCatalogService(catalogRepo)
	orderService := service.NewOrderService(orderRepo)
	contactService := service.NewContactService(contactRepo)

	sessionHandler := handler.NewSessionHandler(sessionStore)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	contactHandler := handler.NewContactHandler(contactService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.CORS(middleware.ParseOrigins(cfg.AllowedOrigins)))
	r.Use(middleware.Metrics())
	r.Use(middleware.OpenAPIValidator(middleware.DefaultOpenAPIValidatorConfig()))

	r.Get("/health", handler.Health)
	r.Get("/health/ready", handler.Ready(db, vault))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		authLimiter := middleware.NewRateLimiter(ctx, 5, 10)
		apiLimiter := middleware.NewRateLimiter(ctx, 20, 50)

		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Middleware())
			r.Post("/session/login", sessionHandler.Login)
			r.Post("/session/register", sessionHandler.Register)
		})

		r.Group(func(r chi.Router) {
			r.Use(apiLimiter.Middleware())

			r.Get("/session", sessionHandler.Current)
			r.Post("/session/logout", sessionHandler.Logout)
			r.Patch("/session/profile", sessionHandler.UpdateProfile)

			r.Get("/catalog/categories", catalogHandler.Categories)
			r.Get("/catalog/categories/{id}/products", catalogHandler.ProductsByCategory)
			r.Get("/catalog/products", catalogHandler.Products)
			r.Get("/catalog/products/{id}", catalogHandler.Product)
			r.Get("/catalog/featured", catalogHandler.Featured)
			r.Get("/catalog/bestsellers", catalogHandler.BestSellers)

			r.Post("/contact", contactHandler.Submit)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSession(sessionStore))
				r.Get("/orders", orderHandler.List)
				r.Get("/orders/summary", orderHandler.Summary)
				r.Get("/orders/{id}", orderHandler.Get)
			})
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("store server listening", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", slog.String("error", err.Error()))
	}

	cancel()

	slog.Info("server stopped gracefully")
}
