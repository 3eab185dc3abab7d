package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	libmetrics "evcharge/libs/metrics"
	"evcharge/libs/mongodb"
	libredis "evcharge/libs/redis"

	"evcharge/internal/config"
	httpserver "evcharge/internal/http"
	"evcharge/internal/http/handlers"
	"evcharge/internal/http/middleware"
	"evcharge/internal/password"
	"evcharge/internal/repository"
	"evcharge/internal/service"
	"evcharge/internal/sessions"
)

// App wires the service dependency graph.
type App struct {
	server      *httpserver.Server
	mongoClient *mongo.Client
	redisClient *redis.Client
	logger      *zap.Logger
}

// New constructs the application graph and seeds the admin user.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	mongoClient, err := mongodb.NewClient(ctx, cfg.Mongo.URI)
	if err != nil {
		return nil, err
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	var redisClient *redis.Client
	var sessionStore *sessions.Store
	if cfg.Redis.Addr != "" {
		redisClient, err = libredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			_ = mongoClient.Disconnect(context.Background())
			return nil, err
		}
		sessionStore = sessions.NewStore(redisClient)
	} else {
		logger.Warn("redis not configured, issued tokens cannot be revoked before expiry")
	}

	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		_ = mongoClient.Disconnect(context.Background())
		return nil, err
	}
	ownerRepo := repository.NewOwnerRepository(db)
	stationRepo := repository.NewStationRepository(db)
	bookingRepo := repository.NewBookingRepository(db, logger)

	hasher := password.NewBcryptHasher(0)
	tokenService := service.NewTokenService(cfg.JWT.Secret, cfg.JWTExpiration())
	locks := service.NewStationLocks()
	serviceMetrics := libmetrics.NewMetrics("evcharge")

	var store service.SessionStore
	var checker middleware.SessionChecker
	if sessionStore != nil {
		store = sessionStore
		checker = sessionStore
	}

	authService := service.NewAuthService(userRepo, hasher, tokenService, store, logger)
	userService := service.NewUserService(userRepo, hasher, logger)
	ownerService := service.NewOwnerService(ownerRepo, logger)
	stationService := service.NewStationService(stationRepo, bookingRepo, locks, logger)
	bookingService := service.NewBookingService(bookingRepo, stationRepo, locks, serviceMetrics, logger)
	dashboardService := service.NewDashboardService(userRepo, ownerRepo, stationRepo, bookingRepo, logger)

	if cfg.Seed.AdminEmail != "" && cfg.Seed.AdminPassword != "" {
		if err := userService.EnsureSeedAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, cfg.Seed.AdminName); err != nil {
			logger.Error("failed to seed admin user", zap.Error(err))
		}
	}

	deps := httpserver.RouterDeps{
		Auth:      handlers.NewAuthHandlers(authService, logger),
		Users:     handlers.NewUserHandlers(userService),
		Owners:    handlers.NewOwnerHandlers(ownerService),
		Stations:  handlers.NewStationHandlers(stationService),
		Bookings:  handlers.NewBookingHandlers(bookingService),
		Dashboard: handlers.NewDashboardHandlers(dashboardService),
		Health:    handlers.NewHealthHandler(),
		Metrics:   promhttp.Handler(),
	}

	router := httpserver.NewRouter(deps,
		middleware.Authenticate(tokenService, checker),
		middleware.Observe(serviceMetrics, logger),
	)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server:      server,
		mongoClient: mongoClient,
		redisClient: redisClient,
		logger:      logger,
	}, nil
}

// Run starts the HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(context.Background()); err != nil {
			a.logger.Warn("failed to disconnect mongo", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
