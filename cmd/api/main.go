package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/milsabores/bakery-api/internal/api/http"
	"github.com/milsabores/bakery-api/internal/api/http/handlers"
	"github.com/milsabores/bakery-api/internal/auth"
	"github.com/milsabores/bakery-api/internal/config"
	"github.com/milsabores/bakery-api/internal/events"
	"github.com/milsabores/bakery-api/internal/observability"
	"github.com/milsabores/bakery-api/internal/persistence"
	"github.com/milsabores/bakery-api/internal/repository"
	"github.com/milsabores/bakery-api/internal/service"
	"github.com/milsabores/bakery-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
	})
	catalogCache := persistence.NewCatalogCache(redis.Client, cfg.Redis.CatalogTTL())
	catalogService := service.NewCatalogService(productRepo, catalogCache, logger)
	postService := service.NewPostService(postRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, dispatcher)
	contactService := service.NewContactService(contactRepo, dispatcher)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	if cfg.Seed.Enabled {
		seedService := service.NewSeedService(userRepo, productRepo, logger, *cfg)
		if err := seedService.Run(ctx); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Products:       handlers.NewProductsHandler(catalogService),
		Posts:          handlers.NewPostsHandler(postService),
		Orders:         handlers.NewOrdersHandler(orderService),
		Contact:        handlers.NewContactHandler(contactService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
