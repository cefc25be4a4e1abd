package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/travel-api/internal/api/http/handlers"
	"github.com/spec-kit/travel-api/internal/auth"
	"github.com/spec-kit/travel-api/internal/config"
	"github.com/spec-kit/travel-api/internal/events"
	"github.com/spec-kit/travel-api/internal/gateway"
	"github.com/spec-kit/travel-api/internal/observability"
	"github.com/spec-kit/travel-api/internal/persistence"
	"github.com/spec-kit/travel-api/internal/repository"
	"github.com/spec-kit/travel-api/internal/service"
	"github.com/spec-kit/travel-api/internal/worker"

	httptransport "github.com/spec-kit/travel-api/internal/api/http"
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
	destinationRepo := repository.NewDestinationRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	mlClient := gateway.NewMLClient(cfg.ML)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:       userRepo,
		GoogleVerifier: auth.NewGoogleVerifier(cfg.Google.ClientID),
	})
	userService := service.NewUserService(userRepo)
	destinationService := service.NewDestinationService(destinationRepo, mlClient, logger)
	reviewService := service.NewReviewService(reviewRepo, destinationRepo, dispatcher)
	ticketService := service.NewTicketService(ticketRepo, userRepo, destinationRepo)
	recommendationService := service.NewRecommendationService(mlClient)

	reconciler := service.NewRatingReconciler(reviewRepo, destinationRepo, logger)
	worker.StartRatingWorker(dispatcher, reconciler)

	authMiddleware := auth.NewMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Users:           handlers.NewUsersHandler(authService, userService),
		Admin:           handlers.NewAdminHandler(authService),
		Destinations:    handlers.NewDestinationsHandler(destinationService),
		Reviews:         handlers.NewReviewsHandler(reviewService),
		Tickets:         handlers.NewTicketsHandler(ticketService),
		Recommendations: handlers.NewRecommendationHandler(recommendationService),
		AuthMiddleware:  authMiddleware,
		CacheMiddleware: httptransport.ResponseCache(redis.Client, cfg.Cache, logger),
		CacheInvalidate: httptransport.CacheInvalidator(redis.Client, cfg.Cache, logger),
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
